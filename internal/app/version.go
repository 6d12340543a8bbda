package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version string. Overridable at build time:
//
//	go build -ldflags "-X github.com/agbru/sysmon/internal/app.Version=1.2.3"
var Version = "dev"

// HasVersionFlag reports whether the arguments request version output.
// Handled before flag parsing so --version works regardless of other flags.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "sysmon %s (%s %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
