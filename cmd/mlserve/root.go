package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mlserve/internal/common/fsutil"
	"mlserve/internal/config"
	"mlserve/internal/manager"
)

// Set with -ldflags "-X main.buildVersion=...".
var buildVersion = "dev"

// cliFlags collects flag values; empty values leave lower layers untouched.
type cliFlags struct {
	configPath  string
	corsOrigins string
	cfg         config.Config
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(os.LookupEnv)
}

func newRootCmdWith(lookup func(string) (string, bool)) *cobra.Command {
	var f cliFlags
	root := &cobra.Command{
		Use:           "mlserve",
		Short:         "Serve predictions from a pre-trained classifier artifact",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "Config file (.yaml, .yml, .json, .toml)")
	pf.StringVar(&f.cfg.ModelPath, "model-path", "", "Model artifact path (defaults MODEL_PATH or model.pkl)")
	pf.StringVar(&f.cfg.ModelVersion, "model-version", "", "Model version label (defaults MODEL_VERSION or v1)")
	pf.StringVar(&f.cfg.GitSHA, "git-sha", "", "Source revision label (defaults GIT_SHA or local)")
	pf.StringVar(&f.cfg.LogLevel, "log-level", "", "Log level: off|error|info|debug (defaults MLSERVE_LOG_LEVEL or info)")
	pf.StringVar(&f.cfg.LogFile, "log-file", "", "Write logs to this file with rotation instead of stderr")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the model and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(lookup)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	sf := serveCmd.Flags()
	sf.StringVar(&f.cfg.Addr, "addr", "", "HTTP listen address (defaults MLSERVE_ADDR or :8000)")
	sf.Int64Var(&f.cfg.MaxBodyBytes, "max-body-bytes", 0, "Maximum /predict body size in bytes (default 1MiB)")
	sf.BoolVar(&f.cfg.CORSEnabled, "cors", false, "Enable CORS")
	sf.StringVar(&f.corsOrigins, "cors-origins", "", "Comma-separated allowed CORS origins (default *)")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Load the model once, print its state and exit non-zero if loading failed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(lookup)
			if err != nil {
				return err
			}
			mgr := manager.Load(managerConfig(cfg, nil))
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(mgr.Describe()); err != nil {
				return err
			}
			if !mgr.Ready() {
				return fmt.Errorf("model failed to load: %s", mgr.Snapshot().Err)
			}
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "mlserve %s\n", buildVersion)
			return err
		},
	}

	root.AddCommand(serveCmd, checkCmd, versionCmd)
	// Running the bare binary serves.
	root.RunE = serveCmd.RunE
	root.Flags().AddFlagSet(serveCmd.Flags())
	return root
}

// resolve layers the config file, the environment and the flags, in
// increasing precedence, over the defaults.
func (f *cliFlags) resolve(lookup func(string) (string, bool)) (config.Config, error) {
	var base config.Config
	if f.configPath != "" {
		p, err := fsutil.ExpandHome(f.configPath)
		if err != nil {
			return base, err
		}
		if base, err = config.Load(p); err != nil {
			return base, fmt.Errorf("load config %s: %w", p, err)
		}
	}
	flags := f.cfg
	flags.CORSOrigins = splitCSV(f.corsOrigins)
	return config.Merge(config.Merge(base, config.FromEnv(lookup)), flags).WithDefaults(), nil
}

func managerConfig(cfg config.Config, events manager.EventPublisher) manager.ManagerConfig {
	return manager.ManagerConfig{
		ModelPath:    cfg.ModelPath,
		ModelVersion: cfg.ModelVersion,
		GitSHA:       cfg.GitSHA,
		Events:       events,
	}
}
