package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"pet-care-insights/internal/config"
	"pet-care-insights/internal/platform/logger"
)

// Version se inyecta con -ldflags.
var Version = "dev"

type rootOptions struct {
	configPath string
	cfg        *config.Config
}

// NewRootCommand arma el árbol de comandos. Sin subcomando corre serve.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "petcare",
		Short:         "Pet Care Insights: análisis de cuidado y detección de mascotas",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "archivo YAML de configuración (opcional)")

	serve := newServeCmd(opts)
	cmd.RunE = serve.RunE

	cmd.AddCommand(serve, newAnalyzeCmd(), newDetectCmd(opts))
	return cmd
}

// Execute corre el CLI con el contexto dado (cancelado por señales en main).
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func newLogger(cfg *config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
