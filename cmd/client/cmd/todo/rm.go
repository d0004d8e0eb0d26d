package todo

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/types"
)

var RmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Удалить задачу",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		if err := app.RemoveTodo(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("ошибка удаления задачи: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Задача удалена")
		return nil
	},
}
