package bookmark

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/output"
	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/types"
)

var title string

var AddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Добавить закладку",
	Long:  `Без --title название берется сервером из заголовка страницы.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		b, err := app.AddBookmark(cmd.Context(), args[0], title)
		if err != nil {
			return fmt.Errorf("ошибка создания закладки: %w", err)
		}

		if output.Format(cmd) == output.FormatJSON {
			return output.JSON(cmd.OutOrStdout(), b)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Закладка создана: %s\n", output.Mark(true), b.Title)
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVarP(&title, "title", "t", "", "название закладки")
}
