package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/archora/archora/internal/cli"
	"github.com/archora/archora/pkg/archora"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(archora.ExitPanic)
		}
	}()

	if os.Getenv("ARCHORA_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(archora.ExitCodeForError(err))
	}
}
