package todo

import (
	"github.com/spf13/cobra"
)

// TodoCmd - родительская команда для работы с задачами
var TodoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Управление задачами",
	Long:  `Просмотр, добавление, отметка выполнения и удаление задач.`,
}
