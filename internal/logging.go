// Package internal holds process-level plumbing shared by the binaries.
package internal

import (
	"log"
	"os"
)

// InitLogging routes the standard logger to stdout with microsecond
// timestamps. Container runtimes collect stdout; stderr is kept for crashes.
func InitLogging() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
