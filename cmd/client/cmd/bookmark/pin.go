package bookmark

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/output"
	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/types"
)

var unpin bool

var PinCmd = &cobra.Command{
	Use:   "pin <id>",
	Short: "Закрепить закладку",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}

		b, err := app.PinBookmark(cmd.Context(), args[0], !unpin)
		if err != nil {
			return fmt.Errorf("ошибка обновления закладки: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", output.Pin(b.Pinned), b.Title)
		return nil
	},
}

func init() {
	PinCmd.Flags().BoolVar(&unpin, "unpin", false, "открепить закладку")
}
