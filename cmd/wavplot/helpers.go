package main

import (
	"fmt"
	"log"
	"math"
	"math/cmplx"
	"os"

	"github.com/go-audio/wav"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/texart/texart"
)

// Normalization constants for PCM sample formats.
const (
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

// readWAVMono reads a WAV file and returns normalized mono samples in
// [-1, 1] and the sample rate. Multi-channel audio is mixed down by
// averaging.
func readWAVMono(path string, verbose bool) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("reading PCM data: %w", err)
	}
	format := buf.Format
	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit",
			format.SampleRate, format.NumChannels, decoder.BitDepth)
	}

	scale, err := sampleScale(int(decoder.BitDepth))
	if err != nil {
		return nil, 0, err
	}

	channels := format.NumChannels
	frames := len(buf.Data) / channels
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for ch := 0; ch < channels; ch++ {
			sum += float64(buf.Data[i*channels+ch])
		}
		samples[i] = sum / float64(channels) / scale
	}
	return samples, format.SampleRate, nil
}

// sampleScale returns the full-scale value for a PCM bit depth.
func sampleScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 8:
		return maxInt16 / 256, nil
	case 16:
		return maxInt16, nil
	case 24:
		return maxInt24, nil
	case 32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth: %d", bitDepth)
	}
}

// spectrumPlot plots the FFT magnitude spectrum on a logarithmic
// y-axis.
func spectrumPlot(samples []float64, rate, maxPoints int) (*texart.Plot, error) {
	if len(samples) < 2 {
		return nil, fmt.Errorf("%w: need at least two samples for a spectrum", texart.ErrEmptyData)
	}

	fft := fourier.NewFFT(len(samples))
	coeffs := fft.Coefficients(nil, samples)

	// Skip the DC bin; it has no place on a log frequency axis.
	freqs := make([]float64, 0, len(coeffs)-1)
	magnitudes := make([]float64, 0, len(coeffs)-1)
	norm := float64(len(samples))
	for i := 1; i < len(coeffs); i++ {
		freqs = append(freqs, fft.Freq(i)*float64(rate))
		magnitudes = append(magnitudes, math.Max(cmplx.Abs(coeffs[i])/norm, 1e-12))
	}
	freqs, magnitudes = decimate(freqs, magnitudes, maxPoints)

	plot := texart.NewPlot(texart.WithLogY())
	opts := texart.SeriesOptions{Mark: texart.MarkNone}
	if err := plot.Plot(freqs, magnitudes, opts); err != nil {
		return nil, err
	}
	plot.SetXLabel("Frequency [Hz]")
	plot.SetYLabel("Magnitude")
	return plot, nil
}
