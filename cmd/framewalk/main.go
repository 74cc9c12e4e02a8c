package main

import (
	"os"

	"github.com/go-delve/framewalk/cmd/framewalk/cmds"
	"github.com/go-delve/framewalk/pkg/version"
)

// Build is the git sha of this binaries build.
var Build string

func main() {
	if Build != "" {
		version.FramewalkVersion.Build = Build
	}
	if err := cmds.New().Execute(); err != nil {
		os.Exit(1)
	}
}
