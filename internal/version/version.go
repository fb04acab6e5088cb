package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the exprc CLI.
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

// Colored returns Version with major, minor and patch in their own colours.
// Anything after the patch number (pre-release, build metadata) is left as is.
func Colored() string {
	core, rest, _ := strings.Cut(Version, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	out := versionMajorColor.Sprint(parts[0]) + "." + versionMinorColor.Sprint(parts[1]) + "." + versionPatchColor.Sprint(parts[2])
	if rest != "" {
		out += "-" + rest
	}
	return out
}

// Details returns the optional build lines, empty values skipped.
func Details() []string {
	var lines []string
	if GitCommit != "" {
		lines = append(lines, "commit: "+GitCommit)
	}
	if BuildDate != "" {
		lines = append(lines, "built:  "+BuildDate)
	}
	return lines
}
