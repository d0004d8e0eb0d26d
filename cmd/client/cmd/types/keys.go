package types

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakhweratechnologies3/apptodopro/internal/app/client"
)

type contextKey string

// ClientAppKey ключ *client.App в контексте команды.
const ClientAppKey contextKey = "app"

// AppFrom достает приложение, созданное в PersistentPreRunE корневой команды.
func AppFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}
