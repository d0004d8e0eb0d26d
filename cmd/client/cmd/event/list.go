package event

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/output"
	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/types"
)

var month string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список событий",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		events, err := app.Events(cmd.Context(), month)
		if err != nil {
			return fmt.Errorf("ошибка получения событий: %w", err)
		}

		w := cmd.OutOrStdout()
		switch output.Format(cmd) {
		case output.FormatJSON:
			return output.JSON(w, events)
		case output.FormatTable:
			rows := make([][]string, 0, len(events))
			for _, e := range events {
				rows = append(rows, []string{output.ShortID(e.ID), e.Date, e.Title, e.Description})
			}
			return output.Table(w, []string{"ID", "Дата", "Событие", "Описание"}, rows)
		}

		if len(events) == 0 {
			fmt.Fprintln(w, "События не найдены")
			return nil
		}
		for _, e := range events {
			fmt.Fprintf(w, "%s  %s\n", output.Accent(e.Date), e.Title)
		}
		return nil
	},
}

func init() {
	ListCmd.Flags().StringVarP(&month, "month", "m", "", "месяц в формате YYYY-MM")
}
