package event

import (
	"github.com/spf13/cobra"
)

// EventCmd - родительская команда для событий календаря
var EventCmd = &cobra.Command{
	Use:   "event",
	Short: "События календаря",
}
