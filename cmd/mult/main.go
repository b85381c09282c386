// Command mult prints the multiplicity of each event after cuts, one
// number per line. --summary appends descriptive statistics of the
// multiplicity distribution.
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
	"ebe-flow/internal/reporting"
	"ebe-flow/internal/stats"
)

var logger = log.New(os.Stderr, "[mult] ", log.LstdFlags)

func main() {
	var opts cli.Options
	opts.Register(flag.CommandLine)
	summary := flag.Bool("summary", false, "append statistics of the multiplicity distribution")
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

	var mults []float64
	for {
		ev, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			out.Flush()
			fail(err)
		}
		if _, err := fmt.Fprintln(out, ev.Multiplicity()); err != nil {
			fail(err)
		}
		if *summary {
			mults = append(mults, float64(ev.Multiplicity()))
		}
	}

	if *summary {
		if _, err := io.WriteString(out, reporting.RenderSummary("mult", stats.Describe(mults))); err != nil {
			fail(err)
		}
	}
}

func fail(err error) {
	logger.Fatal(err)
}
