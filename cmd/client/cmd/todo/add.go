package todo

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/output"
	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/types"
)

var AddCmd = &cobra.Command{
	Use:   "add <текст>",
	Short: "Добавить задачу",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		t, err := app.AddTodo(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("ошибка создания задачи: %w", err)
		}

		if output.Format(cmd) == output.FormatJSON {
			return output.JSON(cmd.OutOrStdout(), t)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Задача создана: %s\n", output.Mark(true), output.ShortID(t.ID))
		return nil
	},
}
