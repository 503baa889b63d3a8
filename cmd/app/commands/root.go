package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var envFile string

// NewRootCommand assembles the menu CLI.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "menu",
		Short:         "Orders, nutrition labels and length ordering",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(serveCmd(), sortLengthCmd(), demoCmd())
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
