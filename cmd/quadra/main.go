package main

import (
	"os"

	"github.com/spf13/cobra"

	"quadra/internal/version"
)

// configDir is where quadra.toml discovery starts.
var configDir = "."

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quadra",
		Short: "Solve a·x² + b·x + c = 0",
		Long: `quadra asks for the coefficients a, b and c, then prints the real roots,
the complex-conjugate pair, or a note that the equation is not quadratic.

Settings are read from quadra.toml in the working directory or any parent.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Version:      version.String(),
		RunE:         runSolve,
	}
}

// main executes the root command; any returned error exits with status 1.
func main() {
	cmd := newRootCmd()
	cmd.Version = version.Colored(version.String(), isTerminal(os.Stdout))
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
