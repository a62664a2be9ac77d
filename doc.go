// Package texart builds publication-quality 2D, polar and multi-panel
// plots whose output is LaTeX/TikZ/PGFPlots source rather than raster
// graphics.
//
// Plots are assembled by calling methods that accumulate data series,
// annotations and style options in memory. Rendering serializes that
// state into LaTeX source which can be included in a document with
// \input, saved as a stand-alone document, or compiled on the fly to a
// cropped PDF using pdflatex and pdfcrop.
//
// # Quick Start
//
//	p := texart.NewPlot()
//	if err := p.Plot(x, y, texart.SeriesOptions{}); err != nil {
//	    log.Fatal(err)
//	}
//	p.SetXLabel("Time [s]")
//	p.SetYLabel("Amplitude")
//	if err := p.Save("figure"); err != nil {
//	    log.Fatal(err)
//	}
//
// The generated figure.tex compiles inside any document that loads the
// tikz and pgfplots packages. To preview without a surrounding
// document:
//
//	err := p.SavePDF(context.Background(), "figure.pdf")
//
// # Plot Types
//
//   - [Plot]: a single 2D axis, optionally with logarithmic x and/or y
//     scaling ([WithLogX], [WithLogY], [WithLogAxes]).
//   - [PolarPlot]: a polar axis; angles are degrees by default, or
//     radians with [WithRadians].
//   - [MultiPlot]: a grid of subplots rendered with the PGFPlots
//     groupplots library, with per-panel and whole-grid configuration.
//
// # Data Preparation
//
// Two smoothing helpers are provided for preprocessing noisy series
// before plotting. [Smooth] resamples a curve through recursive linear
// interpolation; [MovingAverage] applies a centered boxcar average.
// [LocateOnPath] computes the point at a fractional arc length along a
// series and backs the pin placement of [SubPlot.AddPinAtXY].
//
// # Output
//
// Mark, line style and colormap options are passed through to TikZ and
// PGFPlots as text. The closed set of values texart itself produces is
// documented on [SeriesOptions]; anything TikZ accepts may be supplied
// through the style escape hatches.
//
// By default texart produces no log output. Call [SetLogger] to enable
// structured logging of the LaTeX build pipeline.
package texart
