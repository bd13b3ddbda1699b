package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	tomlrepo "github.com/stefan-k/cobald/internal/adapters/repo/toml"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cfg := viper.New()
	app := &app{}
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "condorlimits",
		Short:         "Inspect and adjust HTCondor negotiator concurrency limits",
		Long:          "condorlimits reads the concurrency limits and usage enforced by an HTCondor negotiator, caches them for a configurable age, and pushes new limits back with condor_config_val -rset.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configFile != "" {
				cfg.SetConfigFile(configFile)
			}
			return app.wire(cfg, cmd.ErrOrStderr())
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default $HOME/.condorlimits/config.toml)")
	flags.String("pool", "", "Negotiator pool to query")
	flags.Duration("max-age", 0, "Maximum age of cached negotiator data")
	_ = cfg.BindPFlag(tomlrepo.PoolKey, flags.Lookup("pool"))
	_ = cfg.BindPFlag(tomlrepo.MaxAgeKey, flags.Lookup("max-age"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newLimitsCmd(app),
		newUsageCmd(app),
		newStatusCmd(app),
	)

	return rootCmd
}
