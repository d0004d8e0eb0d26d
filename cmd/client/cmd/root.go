package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/output"
	"github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd/types"
	"github.com/lakhweratechnologies3/apptodopro/internal/app/client"
	"github.com/lakhweratechnologies3/apptodopro/internal/app/client/config"
	serverconfig "github.com/lakhweratechnologies3/apptodopro/internal/app/server/config"
	"github.com/lakhweratechnologies3/apptodopro/internal/utils/logger"
)

var (
	cfgFile   string
	debug     bool
	format    string
	serverURL string
	apiToken  string
)

var rootCmd = &cobra.Command{
	Use:   "dashctl",
	Short: "dashctl - клиент персонального дашборда",
	Long: `dashctl работает с API дашборда из терминала:
задачи, таймер, закладки и события календаря.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if apiToken != "" {
		cfg.APIToken = apiToken
	}

	log := logger.New(cfg.Env, logger.WithOutput(os.Stderr), logger.WithLevel(cfg.LogLevel))
	if debug {
		log = logger.New(serverconfig.EnvLocal, logger.WithOutput(os.Stderr), logger.WithLevel("debug"))
	}
	slog.SetDefault(log)

	app := client.New(cfg, log)
	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		viper.AddConfigPath(filepath.Join(home, ".dashboard"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return config.MustLoad(), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл (по умолчанию ~/.dashboard/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().StringVar(&format, "format", output.FormatSimple, "формат вывода: simple, table или json")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервера")
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", "", "API токен")
}
