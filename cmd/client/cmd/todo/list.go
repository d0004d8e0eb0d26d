package todo

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/output"
	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/types"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/todo"
)

var showDone bool

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список задач",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		todos, err := app.Todos(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения списка задач: %w", err)
		}
		if !showDone {
			todos = pendingOnly(todos)
		}

		w := cmd.OutOrStdout()
		switch output.Format(cmd) {
		case output.FormatJSON:
			return output.JSON(w, todos)
		case output.FormatTable:
			return printTable(w, todos)
		default:
			printSimple(w, todos)
			return nil
		}
	},
}

func pendingOnly(todos []todo.Todo) []todo.Todo {
	out := todos[:0:0]
	for _, t := range todos {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

func printSimple(w io.Writer, todos []todo.Todo) {
	if len(todos) == 0 {
		fmt.Fprintln(w, "Задачи не найдены")
		return
	}
	for _, t := range todos {
		fmt.Fprintf(w, "%s %s  %s\n", output.Mark(t.Completed), output.Faint(output.ShortID(t.ID)), t.Text)
	}
}

func printTable(w io.Writer, todos []todo.Todo) error {
	rows := make([][]string, 0, len(todos))
	for _, t := range todos {
		rows = append(rows, []string{output.ShortID(t.ID), output.Mark(t.Completed), t.Text, output.Date(t.CreatedAt), t.ImageURL})
	}
	return output.Table(w, []string{"ID", "", "Задача", "Создано", "Изображение"}, rows)
}

func init() {
	ListCmd.Flags().BoolVarP(&showDone, "all", "a", false, "показывать выполненные задачи")
}
