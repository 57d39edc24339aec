package cmd

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/codealpha/showcase/internal/scrollspy"
	"github.com/codealpha/showcase/internal/tui"
)

var renderOutput string

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Render, outline or view the portfolio page",
}

// loadPortfolio loads the page named by portfolio.source.
func loadPortfolio() (*scrollspy.Page, float64, string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, 0, "", err
	}
	page, err := scrollspy.LoadPage(cfg.Portfolio.Source)
	if err != nil {
		return nil, 0, "", err
	}
	return page, cfg.Portfolio.RevealThreshold, cfg.Portfolio.Theme, nil
}

var portfolioRenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the portfolio as a static HTML page",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _, theme, err := loadPortfolio()
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if renderOutput != "" && renderOutput != "-" {
			f, err := os.Create(renderOutput)
			if err != nil {
				return fmt.Errorf("creating %s: %w", renderOutput, err)
			}
			defer f.Close()
			w = f
		}
		if err := page.RenderHTML(w, scrollspy.RenderOptions{Theme: theme}); err != nil {
			return err
		}
		if renderOutput != "" && renderOutput != "-" {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", renderOutput)
		}
		return nil
	},
}

var portfolioOutlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Print the page's sections and fade-in blocks",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _, _, err := loadPortfolio()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, page.Title)
		for _, b := range page.Intro {
			fmt.Fprintf(out, "    %-24s %s\n", b.ID, b.Kind)
		}
		for _, s := range page.Sections {
			fmt.Fprintf(out, "  #%s  %s\n", s.ID, s.Title)
			for _, b := range s.Blocks {
				fmt.Fprintf(out, "    %-24s %s\n", b.ID, b.Kind)
			}
		}
		return nil
	},
}

var portfolioViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Scroll through the portfolio in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, threshold, _, err := loadPortfolio()
		if err != nil {
			return err
		}
		m := tui.NewPortfolioModel(page, threshold)
		_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
		return err
	},
}

func init() {
	portfolioRenderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write HTML to this file instead of stdout")

	portfolioCmd.AddCommand(portfolioRenderCmd, portfolioOutlineCmd, portfolioViewCmd)
	rootCmd.AddCommand(portfolioCmd)
}
