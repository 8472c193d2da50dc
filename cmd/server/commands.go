package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/config"
)

const profileEnv = "APP_PROFILE"

// rootOptions holds the flags shared by every command.
type rootOptions struct {
	profile   string
	configDir string
}

func (o *rootOptions) load() (*config.Config, error) {
	if o.profile == "" {
		return nil, fmt.Errorf("no profile: set --profile or %s (local, dev, qa, prod)", profileEnv)
	}
	cfg, err := config.Load(o.profile, config.WithConfigDir(o.configDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newRootCommand builds the CLI. Running it without a subcommand serves.
func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "onboarding-service",
		Short:         "Onboarding form API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serveCommand(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.profile, "profile", os.Getenv(profileEnv),
		"configuration profile (defaults to $"+profileEnv+")")
	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs",
		"directory holding base.yaml and the profile files")

	cmd.AddCommand(newServeCommand(opts), newValidateConfigCommand(opts))
	return cmd
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the form API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serveCommand(cmd, opts)
		},
	}
}

func serveCommand(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	return serve(cmd.Context(), cfg, cmd.ErrOrStderr())
}

func newValidateConfigCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate-config",
		Short: "Load and validate the configuration, then exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return describeConfig(cmd.OutOrStdout(), opts.profile, cfg)
		},
	}
}

// describeConfig prints the settings operators most often need to confirm.
func describeConfig(w io.Writer, profile string, cfg *config.Config) error {
	telemetry := "disabled"
	if cfg.Telemetry.Enabled {
		telemetry = cfg.Telemetry.Exporter
	}
	_, err := fmt.Fprintf(w,
		"profile %s ok\n  listen     %s:%d\n  upstream   %s\n  form ttl   %s (max %d forms)\n  telemetry  %s\n",
		profile, cfg.Server.Host, cfg.Server.Port, cfg.Client.BaseURL,
		cfg.Onboarding.FormTTL, cfg.Onboarding.MaxForms, telemetry,
	)
	return err
}
