package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/calebcase/padic/qp"
	"github.com/calebcase/padic/wire"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] record_file",
	Short: "Print each value stored in a record file.",
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

		for i := 0; ; i++ {
			valuation, numerator, err := dec.Decode()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				log.Fatalf("record %d: %v", i, err)
			}

			x := qp.Qp{
				Numerator: numerator,
				Valuation: valuation,
			}
			log.Debug(spew.Sdump(x))

			fmt.Println(op.Output(x))
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
