package main

import (
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/contractor-portal/internal/platform/config"
)

var (
	profile   string
	configDir string
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pdfupload",
		Short:         "Upload signed PDFs to object storage via multipart upload",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&profile, "profile", "local", "config profile (local, dev, qa, prod)")
	root.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"directory holding base.yaml and the profile file (default $APP_CONFIG_DIR or ./configs)")

	root.AddCommand(uploadCmd(), planCmd())
	return root
}

// loadConfig loads the selected profile, honoring --config-dir.
func loadConfig() (*config.Config, error) {
	var opts []config.Option
	if configDir != "" {
		opts = append(opts, config.WithConfigDir(configDir))
	}
	return config.Load(profile, opts...)
}
