package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestWAV writes a 16-bit WAV file with the given samples and
// returns its path.
func writeTestWAV(t *testing.T, rate, channels int, data []int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 16, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
	return path
}

func TestReadWAVMono(t *testing.T) {
	path := writeTestWAV(t, 8000, 1, []int{0, 16384, -16384, 32767})

	samples, rate, err := readWAVMono(path, false)
	require.NoError(t, err)
	assert.Equal(t, 8000, rate)
	require.Len(t, samples, 4)
	assert.InDelta(t, 0, samples[0], 1e-9)
	assert.InDelta(t, 16384.0/32767, samples[1], 1e-9)
	assert.InDelta(t, 1, samples[3], 1e-9)
}

func TestReadWAVMonoMixesChannels(t *testing.T) {
	// Stereo frames (100, 300): the mono mix averages to 200.
	path := writeTestWAV(t, 8000, 2, []int{100, 300, 100, 300})

	samples, _, err := readWAVMono(path, false)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.InDelta(t, 200.0/32767, samples[0], 1e-9)
}

func TestReadWAVMonoInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.wav")
	require.NoError(t, os.WriteFile(path, []byte("not audio"), 0o644))

	_, _, err := readWAVMono(path, false)
	require.Error(t, err)

	_, _, err = readWAVMono(filepath.Join(t.TempDir(), "missing.wav"), false)
	require.Error(t, err)
}

func TestSampleScale(t *testing.T) {
	for _, depth := range []int{8, 16, 24, 32} {
		scale, err := sampleScale(depth)
		require.NoError(t, err)
		assert.Positive(t, scale)
	}

	_, err := sampleScale(12)
	require.Error(t, err)
}

func TestDecimate(t *testing.T) {
	x := make([]float64, 10)
	y := make([]float64, 10)
	for i := range x {
		x[i] = float64(i)
		y[i] = float64(i * i)
	}

	dx, dy := decimate(x, y, 5)
	assert.Equal(t, []float64{0, 2, 4, 6, 8}, dx)
	assert.Equal(t, []float64{0, 4, 16, 36, 64}, dy)

	// Short series pass through untouched.
	dx, dy = decimate(x, y, 100)
	assert.Equal(t, x, dx)
	assert.Equal(t, y, dy)
}

func TestWaveformPlot(t *testing.T) {
	samples := []float64{0, 0.5, -0.5, 0.25, -0.25}

	plot, err := waveformPlot(samples, 10, 0, 100)
	require.NoError(t, err)

	out, err := plot.Render()
	require.NoError(t, err)
	assert.Contains(t, out, "xlabel={Time [s]}")
	assert.Contains(t, out, "(0.1,0.5)")
}

func TestWaveformPlotSmoothed(t *testing.T) {
	samples := make([]float64, 20)
	for i := range samples {
		samples[i] = float64(i % 2)
	}

	plot, err := waveformPlot(samples, 10, 3, 100)
	require.NoError(t, err)
	require.NotNil(t, plot)

	_, err = waveformPlot(samples, 10, 4, 100)
	require.Error(t, err)
}

func TestSpectrumPlot(t *testing.T) {
	samples := make([]float64, 64)
	for i := range samples {
		samples[i] = float64(i % 2) // strong component at Nyquist
	}

	plot, err := spectrumPlot(samples, 8000, 100)
	require.NoError(t, err)

	out, err := plot.Render()
	require.NoError(t, err)
	assert.Contains(t, out, "ymode=log")
	assert.Contains(t, out, "xlabel={Frequency [Hz]}")

	_, err = spectrumPlot([]float64{1}, 8000, 100)
	require.Error(t, err)
}
