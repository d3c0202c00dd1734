// ccdb-intercept is the stand-in executable. It is placed in a directory
// of links named after real tools; that directory is prepended to PATH by
// the supervisor, so the build calls the stand-in instead of the real
// tool. The stand-in resolves the real tool from the rest of PATH, reports
// the observed invocation to the collector and runs the real tool with an
// unchanged outcome.
package main

import (
	"os"

	"github.com/charmbracelet/log"

	"ccdb/internal/wrapper"
)

func main() {
	configureLogging()
	os.Exit(wrapper.Run())
}

// The stand-in must stay silent inside a working build; verbose logging is
// opt-in via CCDB_LOG.
func configureLogging() {
	log.SetLevel(log.ErrorLevel)
	if value := os.Getenv("CCDB_LOG"); value != "" {
		if level, err := log.ParseLevel(value); err == nil {
			log.SetLevel(level)
		}
	}
}
