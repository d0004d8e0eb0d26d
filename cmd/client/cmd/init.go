package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/auth"
	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/bookmark"
	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/event"
	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/output"
	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/timer"
	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/todo"
	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/types"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Проверить соединение с сервером",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd)
		if err != nil {
			return err
		}
		if err := app.CheckConnection(cmd.Context()); err != nil {
			return fmt.Errorf("сервер недоступен: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), output.Mark(true), "Соединение с сервером установлено")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)

	rootCmd.AddCommand(todo.TodoCmd)
	todo.TodoCmd.AddCommand(todo.ListCmd)
	todo.TodoCmd.AddCommand(todo.AddCmd)
	todo.TodoCmd.AddCommand(todo.DoneCmd)
	todo.TodoCmd.AddCommand(todo.RmCmd)

	rootCmd.AddCommand(timer.TimerCmd)
	timer.TimerCmd.AddCommand(timer.StartCmd)
	timer.TimerCmd.AddCommand(timer.StopCmd)
	timer.TimerCmd.AddCommand(timer.ListCmd)
	timer.TimerCmd.AddCommand(timer.StatsCmd)

	rootCmd.AddCommand(bookmark.BookmarkCmd)
	bookmark.BookmarkCmd.AddCommand(bookmark.ListCmd)
	bookmark.BookmarkCmd.AddCommand(bookmark.AddCmd)
	bookmark.BookmarkCmd.AddCommand(bookmark.PinCmd)

	rootCmd.AddCommand(event.EventCmd)
	event.EventCmd.AddCommand(event.ListCmd)
	event.EventCmd.AddCommand(event.AddCmd)

	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.HashTokenCmd)
}
