package b32

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "b32"

type config struct {
	Debug bool
	Hex   bool
	JSON  bool
}

// loadConfig reads the persistent flags, falling back to B32_* environment
// variables for flags not set on the command line.
func loadConfig(cmd *cobra.Command) (*config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("error during bind flags: %w", err)
	}
	return &config{
		Debug: v.GetBool("debug"),
		Hex:   v.GetBool("hex"),
		JSON:  v.GetBool("json"),
	}, nil
}

type configKey struct{}

// withConfig stores cfg on the command context for the run hooks that follow.
func withConfig(cmd *cobra.Command, cfg *config) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, configKey{}, cfg))
}

// configFrom returns the config loaded by the root pre-run hook, loading it
// only when the command runs without that hook.
func configFrom(cmd *cobra.Command) (*config, error) {
	if ctx := cmd.Context(); ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config); ok {
			return cfg, nil
		}
	}
	return loadConfig(cmd)
}
