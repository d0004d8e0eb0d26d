package auth

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

const minTokenLength = 16

var HashTokenCmd = &cobra.Command{
	Use:   "hash-token",
	Short: "Получить bcrypt хеш токена для AUTH_TOKEN_HASH",
	Long: `Запрашивает токен без эха и печатает его bcrypt хеш.

Хеш указывается на сервере в AUTH_TOKEN_HASH, сам токен в API_TOKEN клиента.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprint(cmd.ErrOrStderr(), "Токен: ")
		token, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения токена: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr())

		fmt.Fprint(cmd.ErrOrStderr(), "Повторите токен: ")
		confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения токена: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr())

		if string(token) != string(confirm) {
			return fmt.Errorf("токены не совпадают")
		}
		return writeHash(cmd.OutOrStdout(), string(token))
	},
}

func writeHash(w io.Writer, token string) error {
	token = strings.TrimSpace(token)
	if len(token) < minTokenLength {
		return fmt.Errorf("токен должен содержать минимум %d символов", minTokenLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка хеширования токена: %w", err)
	}
	_, err = fmt.Fprintln(w, string(hash))
	return err
}
