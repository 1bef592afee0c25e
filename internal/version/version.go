// Package version returns details on the Go and VCS versions used to build the command
package version

import (
	"bytes"
	"fmt"
	"runtime"
	"runtime/debug"
	"text/tabwriter"
	"time"
)

const (
	stateClean   = "clean"
	stateDirty   = "dirty"
	unknownValue = "unknown"
)

// vcsTag may be injected with: -ldflags "-X github.com/regclient/toolsel/internal/version.vcsTag=v1.2.3"
var vcsTag = ""

// Info is the build information of the running binary
type Info struct {
	GoVer     string    `json:"goVersion"`
	GoCompile string    `json:"goCompiler"`
	Platform  string    `json:"platform"`
	Module    string    `json:"module,omitempty"`
	VCSRef    string    `json:"vcsRef"`
	VCSCommit string    `json:"vcsCommit"`
	VCSState  string    `json:"vcsState"`
	VCSTag    string    `json:"vcsTag"`
	VCSDate   time.Time `json:"vcsDate"`
}

// GetInfo reads the build info embedded by the Go toolchain
func GetInfo() Info {
	i := Info{
		GoVer:     unknownValue,
		GoCompile: runtime.Compiler,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		VCSRef:    unknownValue,
		VCSCommit: unknownValue,
		VCSState:  unknownValue,
		VCSTag:    vcsTag,
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	i.GoVer = bi.GoVersion
	i.Module = bi.Main.Path
	if i.VCSTag == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.VCSTag = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			i.VCSCommit = s.Value
			i.VCSRef = s.Value
		case "vcs.modified":
			if s.Value == "true" {
				i.VCSState = stateDirty
			} else {
				i.VCSState = stateClean
			}
		case "vcs.time":
			if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
				i.VCSDate = t
			}
		}
	}
	if i.VCSState == stateDirty && i.VCSRef != unknownValue {
		i.VCSRef += "-" + stateDirty
	}
	return i
}

// MarshalPretty outputs the info in a human readable table
func (i Info) MarshalPretty() ([]byte, error) {
	buf := &bytes.Buffer{}
	tw := tabwriter.NewWriter(buf, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "VCSTag:\t%s\n", i.VCSTag)
	fmt.Fprintf(tw, "VCSRef:\t%s\n", i.VCSRef)
	fmt.Fprintf(tw, "VCSCommit:\t%s\n", i.VCSCommit)
	fmt.Fprintf(tw, "VCSState:\t%s\n", i.VCSState)
	fmt.Fprintf(tw, "VCSDate:\t%s\n", i.VCSDate.Format(time.RFC3339))
	fmt.Fprintf(tw, "Platform:\t%s\n", i.Platform)
	fmt.Fprintf(tw, "GoVer:\t%s\n", i.GoVer)
	fmt.Fprintf(tw, "GoCompiler:\t%s\n", i.GoCompile)
	err := tw.Flush()
	return buf.Bytes(), err
}
