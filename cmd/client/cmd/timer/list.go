package timer

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/output"
	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/types"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/timetrack"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список сессий",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		sessions, err := app.Sessions(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения сессий: %w", err)
		}

		w := cmd.OutOrStdout()
		switch output.Format(cmd) {
		case output.FormatJSON:
			return output.JSON(w, sessions)
		case output.FormatTable:
			return printTable(w, sessions)
		default:
			printSimple(w, sessions)
			return nil
		}
	},
}

func printSimple(w io.Writer, sessions []timetrack.Session) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, "Сессии не найдены")
		return
	}
	for _, s := range sessions {
		state := output.Duration(s.Duration)
		if s.IsRunning {
			state = "идет"
		}
		fmt.Fprintf(w, "%s %s  %s  %s  %s\n",
			output.Mark(!s.IsRunning), output.Faint(output.ShortID(s.ID)),
			output.Date(s.StartTime), output.Accent(s.ProjectName), state)
	}
}

func printTable(w io.Writer, sessions []timetrack.Session) error {
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		end := "-"
		if s.EndTime != nil {
			end = output.Date(*s.EndTime)
		}
		rows = append(rows, []string{
			output.ShortID(s.ID), s.ProjectName, output.Date(s.StartTime), end,
			output.Duration(s.Duration), s.Notes,
		})
	}
	return output.Table(w, []string{"ID", "Проект", "Старт", "Конец", "Длительность", "Заметки"}, rows)
}
