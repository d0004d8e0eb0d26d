package timer

import (
	"github.com/spf13/cobra"
)

// TimerCmd - родительская команда учета времени
var TimerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Учет времени",
	Long: `Запуск и остановка сессий учета времени, список сессий и статистика.

Остановленную сессию нельзя продолжить, для этого запускается новая.`,
}
