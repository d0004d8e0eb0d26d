package todo

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/output"
	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/types"
)

var undo bool

var DoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Отметить задачу выполненной",
	Long:  `Принимает полный id или его уникальный префикс.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		t, err := app.SetTodoDone(cmd.Context(), args[0], !undo)
		if err != nil {
			return fmt.Errorf("ошибка обновления задачи: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", output.Mark(t.Completed), t.Text)
		return nil
	},
}

func init() {
	DoneCmd.Flags().BoolVar(&undo, "undo", false, "снять отметку выполнения")
}
