package cmd

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/codealpha/showcase/internal/calc"
	"github.com/codealpha/showcase/internal/tui"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Open the scientific calculator",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		m := tui.NewCalcModel(calc.New(calcOptions(cfg)...))
		_, err = tea.NewProgram(m).Run()
		return err
	},
}

var calcEvalCmd = &cobra.Command{
	Use:   "eval <expression...>",
	Short: "Evaluate an expression and print the result",
	Example: `  showcase calc eval "sqrt(16) + 2^3"
  showcase calc eval 'sin(30) * 4'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		expr := strings.Join(args, " ")
		v, err := calc.Evaluate(expr)
		if err != nil {
			return fmt.Errorf("evaluating %q: %w", expr, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), calc.FormatNumber(calc.Round(v, cfg.Calculator.Precision)))
		return nil
	},
}

func init() {
	calcCmd.AddCommand(calcEvalCmd)
	rootCmd.AddCommand(calcCmd)
}
