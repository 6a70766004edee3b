package cli

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/KuroiKoyani/pareto-chart/pkg/chart"
	"github.com/KuroiKoyani/pareto-chart/pkg/dataset"
	"github.com/KuroiKoyani/pareto-chart/pkg/theme"
)

// viewCommand creates the view command for the interactive terminal chart.
func (c *CLI) viewCommand() *cobra.Command {
	var (
		category     string
		value        string
		sheet        string
		themePath    string
		highContrast bool
	)

	cmd := &cobra.Command{
		Use:   "view [dataset]",
		Short: "Explore a Pareto chart in the terminal",
		Long: `Explore a Pareto chart in the terminal.

The view command loads a dataset and opens an interactive chart: bars with
the cumulative percentage line drawn over them, a movable cursor, toggleable
selection highlighting, and a data table.

Keys: left/right move the cursor, space toggles selection, c clears it,
h switches high-contrast mode, tab flips between chart and table, q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			readOpts := dataset.ReadOptions{
				Category: category,
				Value:    value,
				Sheet:    sheet,
			}
			return runView(cmd.Context(), args[0], readOpts, themePath, highContrast)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category column (default: first column)")
	cmd.Flags().StringVar(&value, "value", "", "value column (default: second column)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet for XLSX input (default: first sheet)")
	cmd.Flags().StringVar(&themePath, "theme", "", "TOML theme file")
	cmd.Flags().BoolVar(&highContrast, "high-contrast", false, "start in high-contrast mode")

	return cmd
}

// runView loads the dataset and blocks inside the terminal UI until quit.
func runView(ctx context.Context, path string, readOpts dataset.ReadOptions, themePath string, highContrast bool) error {
	logger := loggerFromContext(ctx)
	logger.Debugf("Loading %s", path)

	prog := newProgress(logger)
	q, err := dataset.ReadFile(path, readOpts)
	if err != nil {
		return fmt.Errorf("load dataset %s: %w", path, err)
	}
	prog.done(fmt.Sprintf("Loaded %d categories from %s", q.Len(), filepath.Base(path)))

	th := theme.Default()
	if themePath != "" {
		th, err = theme.Load(themePath)
		if err != nil {
			return fmt.Errorf("load theme %s: %w", themePath, err)
		}
	}
	th.HighContrast = highContrast

	ctrl := chart.New(chart.Config{Theme: th, Logger: logger})
	m := newViewModel(ctrl, q, filepath.Base(path))

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
