// Command flows computes anisotropic flow coefficients event by event.
//
// It reads one or more particle files (std or UrQMD, gzipped or not),
// applies the selection cuts, and prints one line of flow values per
// event. --average prints a single multiplicity-weighted average over
// all events instead, and --differential prints the average binned in
// pT.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"ebe-flow/internal/cli"
	"ebe-flow/internal/flow"
	"ebe-flow/internal/observability"
	"ebe-flow/internal/pipeline"
	"ebe-flow/internal/reporting"
	"ebe-flow/internal/stats"
)

var logger = log.New(os.Stderr, "[flows] ", log.LstdFlags)

func main() {
	var opts cli.Options
	opts.Register(flag.CommandLine)
	vnmin := flag.Int("vnmin", flow.DefaultVnMin, "lowest harmonic to compute")
	vnmax := flag.Int("vnmax", flow.DefaultVnMax, "highest harmonic to compute")
	ptwidth := flag.Float64("ptwidth", flow.DefaultPTWidth, "pT bin width for --differential (GeV)")
	vectors := flag.Bool("vectors", false, "print Qx Qy pairs instead of magnitudes")
	average := flag.Bool("average", false, "print the average flow over all events")
	differential := flag.Bool("differential", false, "print pT-binned average flow")
	summary := flag.Bool("summary", false, "append per-harmonic statistics of the event-by-event magnitudes")
	csvOut := flag.Bool("csv", false, "print per-event results as CSV")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus metrics on this address while running")
	flag.Parse()

	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", observability.Handler())
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				logger.Printf("metrics listener: %v", err)
			}
		}()
	}

	cfg, format, keep, err := opts.Resolve(flag.CommandLine)
	if err != nil {
		fail(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "vnmin":
			cfg.Flow.VnMin = *vnmin
		case "vnmax":
			cfg.Flow.VnMax = *vnmax
		case "ptwidth":
			cfg.Flow.PTWidth = *ptwidth
		}
	})
	if *average && *differential {
		fail(fmt.Errorf("--average and --differential are mutually exclusive"))
	}

	stream, err := pipeline.Open(flag.Args(), format, keep)
	if err != nil {
		fail(err)
	}
	defer stream.Close()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	mode := reporting.ModeMagnitude
	if *vectors {
		mode = reporting.ModeVector
	}

	switch {
	case *average:
		err = runAverage(out, stream, cfg.Flow.VnMin, cfg.Flow.VnMax, mode)
	case *differential:
		err = runDifferential(out, stream, cfg.Flow.VnMin, cfg.Flow.VnMax, cfg.Flow.PTWidth, mode)
	default:
		err = runPerEvent(out, stream, cfg.Flow.VnMin, cfg.Flow.VnMax, mode, *csvOut, *summary)
	}
	if err != nil {
		out.Flush()
		fail(err)
	}
}

// runPerEvent prints one line (or CSV rows) per event as it streams.
func runPerEvent(out io.Writer, stream *pipeline.Stream, vnmin, vnmax int, mode reporting.Mode, csvOut, summary bool) error {
	var cw *reporting.CSVWriter
	if csvOut {
		cw = reporting.NewCSVWriter(out)
	}
	var magnitudes [][]float64
	if summary {
		magnitudes = make([][]float64, vnmax-vnmin+1)
	}

	for {
		ev, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		res, err := flow.ForEvent(ev, vnmin, vnmax)
		if err != nil {
			return err
		}
		observability.RecordFlowComputed(res.Multiplicity)

		if csvOut {
			if err := cw.WriteEvent(res); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintln(out, reporting.RenderFlowLine(res, mode)); err != nil {
				return err
			}
		}
		if summary {
			for i, v := range res.Magnitudes() {
				magnitudes[i] = append(magnitudes[i], v)
			}
		}
	}

	if summary {
		for i, vs := range magnitudes {
			label := fmt.Sprintf("v%d", vnmin+i)
			if _, err := io.WriteString(out, reporting.RenderSummary(label, stats.Describe(vs))); err != nil {
				return err
			}
		}
	}
	return nil
}

// runAverage folds every event into one weighted average and prints it.
func runAverage(out io.Writer, stream *pipeline.Stream, vnmin, vnmax int, mode reporting.Mode) error {
	acc, err := flow.NewAccumulator(vnmin, vnmax)
	if err != nil {
		return err
	}
	for {
		ev, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		acc.AddEvent(ev)
	}
	_, err = fmt.Fprintln(out, reporting.RenderFlowLine(acc.Result(), mode))
	return err
}

// runDifferential prints the pT-binned average flow, one line per bin.
func runDifferential(out io.Writer, stream *pipeline.Stream, vnmin, vnmax int, width float64, mode reporting.Mode) error {
	d, err := flow.NewDifferential(vnmin, vnmax, width)
	if err != nil {
		return err
	}
	for {
		ev, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		d.AddEvent(ev)
	}
	_, err = io.WriteString(out, reporting.RenderDifferential(d.Bins(), mode))
	return err
}

func fail(err error) {
	logger.Fatal(err)
}
