// Package compileinfo reports the version-control state a binary was built
// from, so that output files can be traced back to the code that wrote them.
package compileinfo

import (
	"fmt"
	"os"
	"runtime/debug"
)

type BuildInfo struct {
	Package    string
	GoVersion  string
	Commit     string
	CommitTime string
	Dirty      bool
}

func (b BuildInfo) String() string {
	dirty := ""
	if b.Dirty {
		dirty = " The working tree was modified after that commit."
	}

	return fmt.Sprintf("This %s binary was built with %s at commit %v (%v).%s", b.Package, b.GoVersion, b.Commit, b.CommitTime, dirty)
}

func Get() BuildInfo {
	out := BuildInfo{}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.Package = bi.Path
	out.GoVersion = bi.GoVersion
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			out.Commit = setting.Value
		case "vcs.time":
			out.CommitTime = setting.Value
		case "vcs.modified":
			out.Dirty = setting.Value == "true"
		}
	}

	return out
}

// Banner writes the build info to stderr, keeping stdout clean for data.
func Banner() {
	fmt.Fprintf(os.Stderr, "%s\n", Get())
}
