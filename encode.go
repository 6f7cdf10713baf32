package b32

import (
	"log/slog"

	"github.com/kitimark/b32/pkg/base32"
	"github.com/spf13/cobra"
)

func NewEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encode [flags] [text...]",
		Aliases: []string{"enc"},
		Example: "encode foobar\necho -n foobar | b32 encode --hex",
		RunE:    cmdEncodeRun,
	}
	return cmd
}

func cmdEncodeRun(cmd *cobra.Command, args []string) error {
	cfg, err := configFrom(cmd)
	if err != nil {
		return err
	}
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	alphabet := base32.AlphabetFor(cfg.Hex)
	slog.Debug("encode", "alphabet", alphabet.Name(), "length", len(text))

	return writeResult(cmd, cfg, &result{
		Alphabet: alphabet.Name(),
		Input:    text,
		Output:   base32.Encode(text, cfg.Hex),
	})
}
