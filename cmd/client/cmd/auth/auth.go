package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd - родительская команда для настройки доступа к API
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Доступ к API",
	Long:  `Подготовка токена доступа к API дашборда.`,
}
