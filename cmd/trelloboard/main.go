package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	bc "github.com/egobogo/trelloboard/internal/board"
	trelloClient "github.com/egobogo/trelloboard/internal/board/trello"
	"github.com/egobogo/trelloboard/internal/config"
	"github.com/egobogo/trelloboard/internal/config/filesys"
)

const (
	FlagConfig   = "config"
	FlagEnvFile  = "env-file"
	FlagLogLevel = "log-level"
)

// boardClient is built once per invocation by the root pre-run hook.
var boardClient bc.BoardClient

// rootCmd is a base command.
var rootCmd = &cobra.Command{
	Use:           "trelloboard",
	Short:         "Read lists, members, cards and comments of a Trello board",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, err := cmd.Flags().GetString(FlagEnvFile)
		if err != nil {
			return err
		}
		if err := godotenv.Load(envFile); err != nil {
			log.Printf("No %s file found; using system environment variables", envFile)
		}

		configPath, err := cmd.Flags().GetString(FlagConfig)
		if err != nil {
			return err
		}
		config.SetProvider(filesys.NewFilesysConfigProvider(afero.NewOsFs()))
		if err := config.Load(configPath); err != nil {
			return err
		}
		cfg := config.GetLoadedConfig()
		trelloCfg, err := config.GetTrelloConfig()
		if err != nil {
			return err
		}

		level, err := cmd.Flags().GetString(FlagLogLevel)
		if err != nil {
			return err
		}
		if level == "" {
			level = cfg.LogLevel
		}
		logger := hclog.New(&hclog.LoggerOptions{
			Name:   "trelloboard",
			Level:  hclog.LevelFromString(level),
			Output: os.Stderr,
		})

		client, err := trelloClient.NewTrelloClient(cmd.Context(), trelloOptions(trelloCfg, logger))
		if err != nil {
			return err
		}
		boardClient = client
		return nil
	},
}

func trelloOptions(cfg config.TrelloConfig, logger hclog.Logger) trelloClient.Options {
	return trelloClient.Options{
		APIKey:        cfg.APIKey,
		Token:         cfg.Token,
		BoardID:       cfg.BoardID,
		BaseURL:       cfg.BaseURL,
		AvatarBaseURL: cfg.AvatarBaseURL,
		Timeout:       cfg.Timeout,
		Concurrency:   cfg.Concurrency,
		Logger:        logger,
	}
}

func init() {
	rootCmd.PersistentFlags().String(FlagConfig, "", "(optional) path to YAML config file")
	rootCmd.PersistentFlags().String(FlagEnvFile, ".env", "(optional) dotenv file with TRELLO_* variables")
	rootCmd.PersistentFlags().String(FlagLogLevel, "", "(optional) log level: trace, debug, info, warn, error")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatalf("trelloboard: %v", err)
	}
}
