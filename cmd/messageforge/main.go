// Command messageforge generates message type code for the packages matched
// by the patterns:
//
//	messageforge [flags] [patterns]
//
// Flags can also be set by MESSAGEFORGE_* environment variables or a
// messageforge.yaml file in the working directory.
package main

import (
	"fmt"
	"os"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// fail prints err to the standard error. The message is colorized if color is
// true.
func fail(color bool, err error) {
	message := err.Error()
	if color {
		message = colorize(message)
	}
	fmt.Fprintln(os.Stderr, message)
}
