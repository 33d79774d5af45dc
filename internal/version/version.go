package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the quadra CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// String returns the version followed by whatever build metadata is set,
// e.g. "0.1.0-dev (commit abc123, built 2024-01-15)".
func String() string {
	v := strings.TrimSpace(Version)
	if v == "" {
		v = "dev"
	}
	var meta []string
	if c := strings.TrimSpace(GitCommit); c != "" {
		meta = append(meta, "commit "+c)
	}
	if d := strings.TrimSpace(BuildDate); d != "" {
		meta = append(meta, "built "+d)
	}
	if len(meta) == 0 {
		return v
	}
	return v + " (" + strings.Join(meta, ", ") + ")"
}

// Colored paints the major, minor and patch parts of a semantic version.
// Anything that does not look like x.y.z is returned unchanged.
func Colored(v string, enabled bool) string {
	core, rest, _ := strings.Cut(v, "-")
	parts := strings.SplitN(core, ".", 3)
	if !enabled || len(parts) != 3 {
		return v
	}
	paint := func(c *color.Color, s string) string {
		c.EnableColor()
		return c.Sprint(s)
	}
	out := paint(versionMajorColor, parts[0]) + "." +
		paint(versionMinorColor, parts[1]) + "." +
		paint(versionPatchColor, parts[2])
	if rest != "" {
		out += "-" + rest
	}
	return out
}
