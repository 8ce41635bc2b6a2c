// Package cli is the advisor command line: a server plus one command per
// calculation.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X wealth-advisor/cli.Version=...".
var Version = "dev"

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "advisor",
		Short: "Wealth advisor calculation engine",
		Long: `advisor runs the financial calculations behind the wealth advisor:
compound growth, retirement projections, mortgage payments, portfolio risk,
tax efficiency and investment education.

Run "advisor serve" for the HTTP API, or call a calculation directly:
  advisor compound --principal 10000 --rate 7 --years 30
  advisor portfolio '{"US Stocks": 60000, "US Bonds": 40000}'`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (YAML)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "print the result record as JSON")

	root.AddCommand(
		newServeCmd(a),
		newCompoundCmd(a),
		newRetireCmd(a),
		newMortgageCmd(a),
		newPortfolioCmd(a),
		newTaxCmd(a),
		newLearnCmd(a),
		newToolsCmd(a),
		newPersonasCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	root := newRootCmd()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
