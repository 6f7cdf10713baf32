package b32

import (
	"fmt"
	"log/slog"

	"github.com/kitimark/b32/pkg/base32"
	"github.com/spf13/cobra"
)

func NewDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decode [flags] [text...]",
		Aliases: []string{"dec"},
		Example: "decode MZXW6YTBOI======",
		RunE:    cmdDecodeRun,
	}
	return cmd
}

func cmdDecodeRun(cmd *cobra.Command, args []string) error {
	cfg, err := configFrom(cmd)
	if err != nil {
		return err
	}
	encoded, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	alphabet := base32.AlphabetFor(cfg.Hex)
	slog.Debug("decode", "alphabet", alphabet.Name(), "length", len(encoded))

	text, err := base32.Decode(encoded, cfg.Hex)
	if err != nil {
		cmd.SilenceUsage = true
		return fmt.Errorf("cannot decode %s input: %w", alphabet.Name(), err)
	}
	return writeResult(cmd, cfg, &result{
		Alphabet: alphabet.Name(),
		Input:    encoded,
		Output:   text,
	})
}
