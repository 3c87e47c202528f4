package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pet-care-insights/internal/domain/detection"
	"pet-care-insights/internal/platform/logger"
)

func newDetectCmd(opts *rootOptions) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "detect <archivo|url>",
		Short: "Detecta animal y raza en una imagen local, http(s):// o s3://bucket/key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.Nop()
			if verbose {
				log = newLogger(opts.cfg)
			}

			svc, closeCache, err := buildDetectionService(cmd.Context(), opts.cfg, log, nil)
			if err != nil {
				return err
			}
			defer closeCache()

			d, err := detectArg(cmd, svc, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), d)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "loguea proveedores y cache")
	return cmd
}

func detectArg(cmd *cobra.Command, svc *detection.Service, arg string) (detection.Detection, error) {
	if isReference(arg) {
		return svc.DetectReference(cmd.Context(), arg)
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return detection.Detection{}, fmt.Errorf("read image: %w", err)
	}
	return svc.DetectBytes(cmd.Context(), data, arg)
}

func isReference(s string) bool {
	for _, p := range []string{"http://", "https://", "s3://"} {
		if strings.HasPrefix(strings.ToLower(s), p) {
			return true
		}
	}
	return false
}
