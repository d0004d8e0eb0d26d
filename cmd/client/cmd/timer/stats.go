package timer

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/output"
	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/types"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/timetrack"
)

var statsRange string

var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Статистика по проектам",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		stats, err := app.Stats(cmd.Context(), statsRange)
		if err != nil {
			return fmt.Errorf("ошибка получения статистики: %w", err)
		}

		w := cmd.OutOrStdout()
		if output.Format(cmd) == output.FormatJSON {
			return output.JSON(w, stats)
		}
		return printStats(w, stats)
	},
}

func printStats(w io.Writer, stats *timetrack.Stats) error {
	fmt.Fprintf(w, "Период: %s, всего %s в %d сессиях\n\n",
		output.Accent(string(stats.Range)), output.Duration(stats.TotalSeconds), stats.Sessions)

	rows := make([][]string, 0, len(stats.ByProject))
	for _, p := range stats.ByProject {
		rows = append(rows, []string{p.ProjectName, output.Duration(p.Seconds), fmt.Sprint(p.Sessions)})
	}
	return output.Table(w, []string{"Проект", "Время", "Сессий"}, rows)
}

func init() {
	StatsCmd.Flags().StringVarP(&statsRange, "range", "r", "all", "период: today, week, month или all")
}
