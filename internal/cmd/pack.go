package cmd

import (
	"fmt"
	"math/big"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/calebcase/padic/qp"
	"github.com/calebcase/padic/wire"
)

var packCmd = &cobra.Command{
	Use:   "pack [flags] integer...",
	Short: "Encode integers as p-adic value records.",
	Long: `Parse each argument as a decimal integer, normalize it at the
	given valuation, and append one record per value to the output.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		op := contextFor(cmd)

		valuation, err := cmd.Flags().GetInt16("valuation")
		if err != nil {
			log.Fatal(err)
		}

		out := os.Stdout
		if path, err := cmd.Flags().GetString("output"); err != nil {
			log.Fatal(err)
		} else if path != "" {
			out, err = os.Create(path)
			if err != nil {
				log.Fatal(err)
			}
			defer out.Close()
		}

		enc := wire.NewEncoder(out)

		for _, arg := range args {
			n, ok := new(big.Int).SetString(arg, 10)
			if !ok {
				log.Fatalf("invalid integer: %q", arg)
			}

			x := qp.Qp{
				Numerator: n,
				Valuation: valuation,
			}
			op.Simplify(&x)
			log.Debugf("packing %s", op.Output(x))

			err := enc.Encode(x.Valuation, x.Numerator)
			if err != nil {
				log.Fatalf("%q: %v", arg, err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(packCmd)
	packCmd.Flags().StringP("output", "o", "", "Write records to this file instead of stdout")
	packCmd.Flags().Int16("valuation", 0, "Valuation to place each integer at before normalizing")
}
