package b32

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:  "version",
		Args: cobra.NoArgs,
		RunE: cmdVersionRun,
	}
	return cmd
}

func cmdVersionRun(cmd *cobra.Command, _ []string) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("error during get version")
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), versionString(info.Main.Version))
	return err
}

// versionString returns the canonical semver of v, or "devel" for local builds.
func versionString(v string) string {
	if !semver.IsValid(v) {
		return "devel"
	}
	return semver.Canonical(v)
}
