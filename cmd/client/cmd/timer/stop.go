package timer

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/output"
	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/types"
)

var stopDuration int64

var StopCmd = &cobra.Command{
	Use:   "stop [id]",
	Short: "Остановить таймер",
	Long: `Без id останавливается последняя запущенная сессия.

Длительность по умолчанию считается сервером от времени старта.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		id := ""
		if len(args) > 0 {
			id = args[0]
		}
		var duration *int64
		if cmd.Flags().Changed("duration") {
			duration = &stopDuration
		}

		s, err := app.StopTimer(cmd.Context(), id, duration)
		if err != nil {
			return fmt.Errorf("ошибка остановки таймера: %w", err)
		}

		if output.Format(cmd) == output.FormatJSON {
			return output.JSON(cmd.OutOrStdout(), s)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Таймер остановлен: %s, %s\n",
			output.Mark(true), output.Accent(s.ProjectName), output.Duration(s.Duration))
		return nil
	},
}

func init() {
	StopCmd.Flags().Int64VarP(&stopDuration, "duration", "d", 0, "длительность в секундах")
}
