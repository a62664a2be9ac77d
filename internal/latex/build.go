// Package latex compiles LaTeX source to cropped PDF files by invoking
// the external pdflatex and pdfcrop tools.
package latex

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Default external tool names, resolved through PATH.
const (
	defaultCompiler = "pdflatex"
	defaultCropper  = "pdfcrop"
)

// Builder runs the two-stage build pipeline: compile the source to a
// PDF, then trim the page to the content bounding box. The zero value
// is not usable; create builders with New.
type Builder struct {
	// Compiler is the LaTeX compiler command.
	Compiler string

	// Cropper is the PDF cropping command.
	Cropper string

	// Logger receives build diagnostics. Never nil.
	Logger *slog.Logger
}

// New creates a Builder using the default tools and the given logger.
// A nil logger disables logging.
func New(logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.New(discardHandler{})
	}
	return &Builder{
		Compiler: defaultCompiler,
		Cropper:  defaultCropper,
		Logger:   logger,
	}
}

// Build compiles source in a temporary directory and writes the
// cropped PDF to destPath. The temporary build tree is removed
// afterwards.
func (b *Builder) Build(ctx context.Context, source, destPath string) error {
	buildDir, err := os.MkdirTemp("", "texart-build-")
	if err != nil {
		return fmt.Errorf("creating build directory: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(buildDir); rmErr != nil {
			b.Logger.Warn("build directory cleanup failed", "dir", buildDir, "error", rmErr)
		}
	}()

	srcPath := filepath.Join(buildDir, "document.tex")
	if err := os.WriteFile(srcPath, []byte(source), 0o644); err != nil {
		return fmt.Errorf("writing LaTeX source: %w", err)
	}
	b.Logger.Debug("wrote build source", "path", srcPath, "bytes", len(source))

	pdfPath, err := b.compile(ctx, srcPath)
	if err != nil {
		return err
	}
	if err := b.crop(ctx, pdfPath); err != nil {
		return err
	}

	pdf, err := os.ReadFile(pdfPath)
	if err != nil {
		return fmt.Errorf("reading compiled PDF: %w", err)
	}
	if err := os.WriteFile(destPath, pdf, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", destPath, err)
	}
	return nil
}

// compile runs the LaTeX compiler on path and returns the produced PDF
// path.
func (b *Builder) compile(ctx context.Context, path string) (string, error) {
	dir := filepath.Dir(path)
	b.Logger.Info("compiling LaTeX source", "compiler", b.Compiler, "path", path)

	cmd := exec.CommandContext(ctx, b.Compiler, "-halt-on-error", "-output-directory", dir, path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("LaTeX compilation failed:\n%s", CompileErrors(output))
	}
	return strings.TrimSuffix(path, ".tex") + ".pdf", nil
}

// crop trims the PDF at path to its content bounding box, replacing the
// file in place.
func (b *Builder) crop(ctx context.Context, path string) error {
	cropped := filepath.Join(filepath.Dir(path), "crop-output.pdf")
	b.Logger.Info("cropping PDF", "cropper", b.Cropper, "path", path)

	cmd := exec.CommandContext(ctx, b.Cropper, path, cropped)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("cropping PDF failed:\n%s", output)
	}
	return os.Rename(cropped, path)
}

// CompileErrors extracts the error lines from LaTeX compiler output.
// LaTeX marks errors with a leading "!"; everything else is progress
// chatter that would drown the actual failure.
func CompileErrors(output []byte) string {
	var errLines []string
	for _, line := range strings.Split(string(output), "\n") {
		if strings.HasPrefix(line, "!") {
			errLines = append(errLines, line)
		}
	}
	if len(errLines) == 0 {
		// No marked errors; fall back to the full output.
		return string(output)
	}
	return strings.Join(errLines, "\n")
}

// discardHandler drops all records.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }
