// Command convert rewrites particle files into the compact std
// encoding: one "ID pT phi eta" line per particle, a blank line
// between events. UrQMD inputs are detected by name as usual, so the
// typical use is converting .f13 files once and analyzing the smaller
// std files afterwards.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"ebe-flow/internal/cli"
	"ebe-flow/internal/pipeline"
)

var logger = log.New(os.Stderr, "[convert] ", log.LstdFlags)

func main() {
	var opts cli.Options
	opts.Register(flag.CommandLine)
	flag.Parse()

	_, format, keep, err := opts.Resolve(flag.CommandLine)
	if err != nil {
		fail(err)
	}

	stream, err := pipeline.Open(flag.Args(), format, keep)
	if err != nil {
		fail(err)
	}
	defer stream.Close()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	first := true
	for {
		ev, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			out.Flush()
			fail(err)
		}
		if !first {
			if _, err := fmt.Fprintln(out); err != nil {
				fail(err)
			}
		}
		first = false
		for _, p := range ev {
			if _, err := fmt.Fprintln(out, p.String()); err != nil {
				fail(err)
			}
		}
	}
}

func fail(err error) {
	logger.Fatal(err)
}
