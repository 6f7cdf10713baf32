package b32

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func NewMainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "b32 [flags] [command]",
		Short:             "Encode and decode RFC 4648 base32 text",
		PersistentPreRunE: cmdMainPreRun,
	}

	cmd.PersistentFlags().BoolP("debug", "d", false, "print debug info")
	cmd.PersistentFlags().BoolP("hex", "x", false, "use the extended hex alphabet")
	cmd.PersistentFlags().BoolP("json", "j", false, "print the result as a json document")

	cmd.AddCommand(NewEncodeCmd())
	cmd.AddCommand(NewDecodeCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func cmdMainPreRun(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	withConfig(cmd, cfg)
	if cfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	return nil
}
