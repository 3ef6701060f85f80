package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/calebcase/padic/qp"
	"github.com/calebcase/padic/wire"
)

var sumCmd = &cobra.Command{
	Use:   "sum [flags] record_file",
	Short: "Fold all values in a record file into their sum.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		op := contextFor(cmd)

		f, err := os.Open(args[0])
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		dec := wire.NewDecoder(f)
		total := op.Zero()

		for i := 0; ; i++ {
			valuation, numerator, err := dec.Decode()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				log.Fatalf("record %d: %v", i, err)
			}

			total = op.Add(total, qp.Qp{
				Numerator: numerator,
				Valuation: valuation,
			})
			log.Debugf("running total %s", op.Output(total))
		}

		fmt.Println(op.Output(total))
		if total.Valuation >= 0 {
			fmt.Println(op.OutputInteger(total))
		}
	},
}

func init() {
	rootCmd.AddCommand(sumCmd)
}
