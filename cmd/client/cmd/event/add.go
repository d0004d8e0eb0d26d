package event

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/output"
	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/types"
	"github.com/lakhweratechnologies3/apptodopro/internal/app/client"
)

var (
	date        string
	description string
)

var AddCmd = &cobra.Command{
	Use:   "add <название>",
	Short: "Добавить событие",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		d := date
		if d == "" {
			d = time.Now().Format(time.DateOnly)
		}

		e, err := app.AddEvent(cmd.Context(), client.EventRequest{
			Title:       strings.Join(args, " "),
			Date:        d,
			Description: description,
		})
		if err != nil {
			return fmt.Errorf("ошибка создания события: %w", err)
		}

		if output.Format(cmd) == output.FormatJSON {
			return output.JSON(cmd.OutOrStdout(), e)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Событие %s на %s\n", output.Mark(true), e.Title, e.Date)
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVarP(&date, "date", "d", "", "дата YYYY-MM-DD, по умолчанию сегодня")
	AddCmd.Flags().StringVar(&description, "description", "", "описание")
}
