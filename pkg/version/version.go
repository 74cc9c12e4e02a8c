package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version represents the current version of framewalk.
type Version struct {
	Major    string
	Minor    string
	Patch    string
	Metadata string
	Build    string
}

// FramewalkVersion is the current version of framewalk.
var FramewalkVersion = Version{
	Major: "0", Minor: "3", Patch: "0", Metadata: "",
}

func (v Version) String() string {
	if v.Build == "" {
		v.Build = vcsRevision()
	}
	ver := fmt.Sprintf("Version: %s.%s.%s", v.Major, v.Minor, v.Patch)
	if v.Metadata != "" {
		ver += "-" + v.Metadata
	}
	if v.Build == "" {
		return ver
	}
	return fmt.Sprintf("%s\nBuild: %s", ver, v.Build)
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			return setting.Value
		}
	}
	return ""
}

// BuildInfo returns the toolchain version and the module dependencies the
// binary was built with.
func BuildInfo() string {
	return fmt.Sprintf("%s\n%s", runtime.Version(), moduleBuildInfo())
}
