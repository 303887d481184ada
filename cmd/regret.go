package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/decision-kit/decision-kit/criteria"
)

var regretScenarioPath string // Path to a YAML scenario file; empty = built-in reference study

// regretCmd prints the opportunity-loss table behind the Savage criterion
var regretCmd = &cobra.Command{
	Use:   "regret",
	Short: "Print the regret matrix for a payoff scenario",
	Long:  "Derive the regret (opportunity loss) matrix from a payoff scenario: each entry becomes its column's maximum minus the entry. One bracketed row is printed per strategy.",
	Run: func(cmd *cobra.Command, args []string) {
		scenario := loadScenario(regretScenarioPath)
		if err := scenario.Validate(); err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}

		regret, err := criteria.RegretMatrix(scenario.Matrix())
		if err != nil {
			logrus.Fatalf("Regret computation failed: %v", err)
		}
		fmt.Print(regret.String())
	},
}

// init sets up regret flags and attaches the subcommand to root
func init() {
	regretCmd.Flags().StringVar(&regretScenarioPath, "scenario", "", "Path to a YAML scenario file (default: built-in reference study)")

	rootCmd.AddCommand(regretCmd)
}
