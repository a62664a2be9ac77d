// Command wavplot plots the waveform or spectrum of a WAV audio file
// as a LaTeX/TikZ figure.
//
// Usage:
//
//	wavplot input.wav figure.tex
//	wavplot -spectrum input.wav spectrum.tex
//	wavplot -smooth 5 -pdf input.wav figure.pdf
//
// The waveform is downsampled to a plottable number of points with a
// moving average before rendering. Spectrum mode computes the FFT
// magnitude and plots it on a logarithmic y-axis.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/texart/texart"
)

const (
	// minRequiredArgs is the input and output path.
	minRequiredArgs = 2

	// defaultMaxPoints keeps figures light enough for pdflatex.
	defaultMaxPoints = 1000

	// buildTimeout bounds the external pdflatex/pdfcrop invocations.
	buildTimeout = 2 * time.Minute
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	spectrum := flag.Bool("spectrum", false, "Plot the FFT magnitude spectrum instead of the waveform")
	smooth := flag.Int("smooth", 0, "Moving average width (odd) applied before plotting")
	maxPoints := flag.Int("max-points", defaultMaxPoints, "Maximum number of plotted points")
	pdf := flag.Bool("pdf", false, "Compile the figure to a cropped PDF (requires pdflatex and pdfcrop)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output\n\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	inputPath, outputPath := args[0], args[1]

	samples, rate, err := readWAVMono(inputPath, *verbose)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("Read %d samples at %d Hz", len(samples), rate)
	}

	var plot *texart.Plot
	if *spectrum {
		plot, err = spectrumPlot(samples, rate, *maxPoints)
	} else {
		plot, err = waveformPlot(samples, rate, *smooth, *maxPoints)
	}
	if err != nil {
		return err
	}

	if *pdf || strings.HasSuffix(outputPath, ".pdf") {
		ctx, cancel := context.WithTimeout(context.Background(), buildTimeout)
		defer cancel()
		if err := plot.SavePDF(ctx, outputPath); err != nil {
			return fmt.Errorf("building PDF: %w", err)
		}
	} else if err := plot.Save(outputPath); err != nil {
		return fmt.Errorf("saving figure: %w", err)
	}

	if *verbose {
		log.Printf("Wrote %s", outputPath)
	}
	return nil
}

// waveformPlot plots amplitude against time.
func waveformPlot(samples []float64, rate, smooth, maxPoints int) (*texart.Plot, error) {
	x := make([]float64, len(samples))
	for i := range x {
		x[i] = float64(i) / float64(rate)
	}

	if smooth > 1 {
		var err error
		x, samples, err = texart.MovingAverage(x, samples, smooth)
		if err != nil {
			return nil, fmt.Errorf("smoothing waveform: %w", err)
		}
	}
	x, samples = decimate(x, samples, maxPoints)

	plot := texart.NewPlot()
	opts := texart.SeriesOptions{Mark: texart.MarkNone}
	if err := plot.Plot(x, samples, opts); err != nil {
		return nil, err
	}
	plot.SetXLabel("Time [s]")
	plot.SetYLabel("Amplitude")
	return plot, nil
}

// decimate strides through the series so that at most maxPoints
// samples remain.
func decimate(x, y []float64, maxPoints int) ([]float64, []float64) {
	if maxPoints < 2 || len(x) <= maxPoints {
		return x, y
	}
	stride := (len(x) + maxPoints - 1) / maxPoints
	var dx, dy []float64
	for i := 0; i < len(x); i += stride {
		dx = append(dx, x[i])
		dy = append(dy, y[i])
	}
	return dx, dy
}
