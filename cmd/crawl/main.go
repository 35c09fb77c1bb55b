// Package main provides the entry point for the crawl CLI, a thin driver
// that wires the crawl library's action callback to a bounded channel and
// a printer goroutine, and nothing more.
//
// Usage:
//
//	crawl [flags] <root>
//
// Examples:
//
//	crawl .
//	crawl --strategy pool --workers 8 /var/log
//	crawl --strategy recursive --stats /tmp
package main

import (
	"log"
	"os"

	"github.com/andysalerno/async-crawl/cmd/crawl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
