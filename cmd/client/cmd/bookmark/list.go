package bookmark

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/output"
	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/types"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/bookmark"
)

var query string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список закладок",
	Long:  `Закрепленные закладки выводятся первыми. Флаг --query ищет по названию и адресу.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		bookmarks, err := app.Bookmarks(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("ошибка получения закладок: %w", err)
		}

		w := cmd.OutOrStdout()
		switch output.Format(cmd) {
		case output.FormatJSON:
			return output.JSON(w, bookmarks)
		case output.FormatTable:
			rows := make([][]string, 0, len(bookmarks))
			for _, b := range bookmarks {
				rows = append(rows, []string{output.ShortID(b.ID), output.Pin(b.Pinned), b.Title, b.URL})
			}
			return output.Table(w, []string{"ID", "", "Название", "Адрес"}, rows)
		default:
			printSimple(w, bookmarks)
			return nil
		}
	},
}

func printSimple(w io.Writer, bookmarks []bookmark.Bookmark) {
	if len(bookmarks) == 0 {
		fmt.Fprintln(w, "Закладки не найдены")
		return
	}
	for _, b := range bookmarks {
		title := b.Title
		if title == "" {
			title = "Без названия"
		}
		fmt.Fprintf(w, "%s %s  %s\n   %s\n", output.Pin(b.Pinned), output.Faint(output.ShortID(b.ID)), title, b.URL)
	}
}

func init() {
	ListCmd.Flags().StringVarP(&query, "query", "q", "", "строка поиска")
}
