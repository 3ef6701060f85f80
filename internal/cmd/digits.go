package cmd

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var digitsCmd = &cobra.Command{
	Use:   "digits [flags] integer",
	Short: "Show an integer in canonical p-adic form.",
	Long: `Normalize an integer in the chosen field and print both the
	canonical numerator(valuation) form and the truncated integer
	projection.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		op := contextFor(cmd)

		n, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			log.Fatalf("invalid integer: %q", args[0])
		}

		x := op.Unit(int32(n))

		fmt.Println(op.Output(x))
		fmt.Println(op.OutputInteger(x))
	},
}

func init() {
	rootCmd.AddCommand(digitsCmd)
}
