package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"
)

// Version information for the corec CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Semver parses Version.
func Semver() (*semver.Version, error) {
	v, err := semver.NewVersion(Version)
	if err != nil {
		return nil, fmt.Errorf("tool version %q: %w", Version, err)
	}
	return v, nil
}

// Colored renders Version with major, minor and patch in their own colours.
// Versions that do not parse are returned as is.
func Colored() string {
	v, err := Semver()
	if err != nil {
		return Version
	}
	s := versionMajorColor.Sprint(v.Major()) + "." +
		versionMinorColor.Sprint(v.Minor()) + "." +
		versionPatchColor.Sprint(v.Patch())
	if pre := v.Prerelease(); pre != "" {
		s += "-" + pre
	}
	return s
}

// Satisfies reports whether the tool version meets constraint, e.g. ">= 0.1".
// Prerelease suffixes are ignored so that dev builds match their release line.
func Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("core constraint %q: %w", constraint, err)
	}
	v, err := Semver()
	if err != nil {
		return false, err
	}
	release, err := v.SetPrerelease("")
	if err != nil {
		return false, fmt.Errorf("tool version %q: %w", Version, err)
	}
	return c.Check(&release), nil
}
