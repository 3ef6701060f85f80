// Package cmd implements the padic command line tool.
package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/calebcase/padic/qp"
)

var rootCmd = &cobra.Command{
	Use:   "padic",
	Short: "Inspect and manipulate streams of p-adic values.",
	Long: `Encode integers as exact p-adic values, store them in compact
	record files, and decode, display, or fold them back.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if getBool(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Int32P("prime", "p", 3, "Prime of the p-adic field")
}

func getBool(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		log.Fatal(err)
	}

	return v
}

func contextFor(cmd *cobra.Command) qp.Op {
	prime, err := cmd.Flags().GetInt32("prime")
	if err != nil {
		log.Fatal(err)
	}
	if prime < 2 {
		log.Fatalf("invalid prime: %d", prime)
	}

	return qp.New(prime)
}
