package timer

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/output"
	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/types"
)

var startNotes string

var StartCmd = &cobra.Command{
	Use:   "start [проект]",
	Short: "Запустить таймер",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		project := ""
		if len(args) > 0 {
			project = args[0]
		}

		s, err := app.StartTimer(cmd.Context(), project, startNotes)
		if err != nil {
			return fmt.Errorf("ошибка запуска таймера: %w", err)
		}

		if output.Format(cmd) == output.FormatJSON {
			return output.JSON(cmd.OutOrStdout(), s)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Таймер запущен: %s (%s)\n",
			output.Mark(false), output.Accent(s.ProjectName), output.ShortID(s.ID))
		return nil
	},
}

func init() {
	StartCmd.Flags().StringVarP(&startNotes, "notes", "n", "", "заметки к сессии")
}
