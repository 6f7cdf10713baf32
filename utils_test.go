package b32

import (
	"bytes"
	"strings"
	"testing"
)

// trunMainCommand runs the root command with args and stdin, returning stdout.
func trunMainCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewMainCmd()
	out := new(bytes.Buffer)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	err := cmd.Execute()
	return out.String(), err
}
