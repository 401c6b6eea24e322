// Package engine drives the external analysis engine as a child process:
// launching it, feeding it queries, and demultiplexing its line-delimited
// JSON responses by query id (spec.md §4.G, §5, §6).
package engine

import (
	"fmt"

	"github.com/sadakatsu/go-performance-quality/pkg/katago/humanprofile"
)

// LaunchConfig describes how to start the engine subprocess. Grounded on
// katago/launchconfiguration.py's LaunchConfiguration, with its
// launch_script property generalized into an argv slice so the process is
// started without a shell (see DESIGN.md).
type LaunchConfig struct {
	Executable  string
	Config      string
	SearchModel string
	HumanModel  string
	Profile     humanprofile.Profile

	AnalysisThreads int
	SearchThreads   int

	Playouts int
	Visits   int

	FastQuit bool

	OverrideConfig map[string]string
}

// DefaultLaunchConfig fills in the defaults the source hardcodes: 16384
// playouts, 1048576 visits, fast quit enabled.
func DefaultLaunchConfig() LaunchConfig {
	return LaunchConfig{
		Playouts: 16384,
		Visits:   1048576,
		FastQuit: true,
	}
}

// Args renders the LaunchConfig as an argv slice for exec.Command,
// equivalent in content to launch_script but never passed through a
// shell. reportAnalysisWinrateAs=SIDETOMOVE is hardcoded, matching the
// source's comment that this application cannot work well otherwise.
func (c LaunchConfig) Args() []string {
	override := fmt.Sprintf(
		"humanSLProfile=%v,numAnalysisThreads=%v,numSearchThreads=%v,maxPlayouts=%v,maxVisits=%v,reportAnalysisWinrateAs=SIDETOMOVE",
		c.Profile, c.AnalysisThreads, c.SearchThreads, c.Playouts, c.Visits,
	)

	args := []string{
		"analysis",
		"-config", c.Config,
		"-model", c.SearchModel,
		"-human-model", c.HumanModel,
		"-override-config", override,
	}
	if c.FastQuit {
		args = append(args, "-quit-without-waiting")
	}
	for k, v := range c.OverrideConfig {
		args = append(args, "-override-config", fmt.Sprintf("%v=%v", k, v))
	}
	return args
}
