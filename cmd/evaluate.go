package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/decision-kit/decision-kit/criteria"
)

var (
	scenarioPath  string  // Path to a YAML scenario file; empty = built-in reference study
	coefficient   float64 // Hurwicz pessimism coefficient
	criterionName string  // Single criterion to evaluate; empty = all three
	breakdown     bool    // Print the per-strategy table after the summary
)

// criterionLabels maps criterion names to their output labels.
var criterionLabels = map[string]string{
	"minimax": "Minimax",
	"maximax": "Maximax",
	"savage":  "Savage",
	"hurwicz": "Hurwicz",
}

// evaluateCmd computes the decision criteria for one payoff scenario
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate decision criteria over a payoff scenario",
	Long:  "Load a payoff scenario (or use the built-in reference study) and print the Minimax, Savage, and Hurwicz criterion values, or a single criterion selected with --criterion.",
	Run: func(cmd *cobra.Command, args []string) {
		scenario := loadScenario(scenarioPath)
		if err := scenario.Validate(); err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}

		matrix := scenario.Matrix()
		alpha := resolveCoefficient(cmd, scenario)
		if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
			logrus.Fatalf("coefficient must be within [0, 1], got %g", alpha)
		}
		logrus.Infof("Evaluating scenario %q: %d strategies, %d states, coefficient %g",
			scenario.Name, matrix.Rows(), matrix.Cols(), alpha)

		if criterionName != "" {
			if !criteria.IsValidCriterion(criterionName) {
				logrus.Fatalf("Unknown criterion %q; valid criteria: minimax, maximax, savage, hurwicz", criterionName)
			}
			criterion := criteria.NewCriterion(criterionName, alpha)
			value, err := criterion.Evaluate(matrix)
			if err != nil {
				logrus.Fatalf("Evaluation failed: %v", err)
			}
			fmt.Printf("%s: %.6g\n", criterionLabels[criterion.Name()], value)
			return
		}

		report, err := criteria.Evaluate(matrix, alpha)
		if err != nil {
			logrus.Fatalf("Evaluation failed: %v", err)
		}
		fmt.Printf("Minimax: %.6g\n", report.Minimax)
		fmt.Printf("Savage: %.6g\n", report.Savage)
		fmt.Printf("Hurwicz: %.6g\n", report.Hurwicz)
		if breakdown {
			report.Print(os.Stdout)
		}
	},
}

// loadScenario reads a scenario file, or falls back to the built-in
// reference study when no path is given.
func loadScenario(path string) *criteria.Scenario {
	if path == "" {
		logrus.Debugf("No scenario file given; using the built-in reference study")
		return criteria.ReferenceScenario()
	}
	scenario, err := criteria.LoadScenario(path)
	if err != nil {
		logrus.Fatalf("Failed to load scenario %s: %v", path, err)
	}
	return scenario
}

// resolveCoefficient applies the precedence for the Hurwicz coefficient:
// an explicit --coefficient flag wins, then the scenario's value, then the
// flag default.
func resolveCoefficient(cmd *cobra.Command, scenario *criteria.Scenario) float64 {
	if cmd.Flags().Changed("coefficient") {
		return coefficient
	}
	if scenario.Coefficient != nil {
		return *scenario.Coefficient
	}
	return coefficient
}

// init sets up evaluate flags and attaches the subcommand to root
func init() {
	evaluateCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to a YAML scenario file (default: built-in reference study)")
	evaluateCmd.Flags().Float64Var(&coefficient, "coefficient", 0.8, "Hurwicz pessimism coefficient in [0, 1]")
	evaluateCmd.Flags().StringVar(&criterionName, "criterion", "", "Evaluate a single criterion (minimax, maximax, savage, hurwicz)")
	evaluateCmd.Flags().BoolVar(&breakdown, "breakdown", false, "Print the per-strategy breakdown table")

	rootCmd.AddCommand(evaluateCmd)
}
