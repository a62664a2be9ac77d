package texart

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Saver is implemented by plot types that can write themselves as an
// includable LaTeX file.
type Saver interface {
	Save(path string) error
}

// Namer builds output file names from a base name and an optional
// prefix and suffix. It replaces ad-hoc name formatting when a series
// of related figures shares a common naming scheme; being a plain
// value, it can be copied and passed around without the cross-test
// interference of process-wide settings.
type Namer struct {
	// Prefix is prepended to every graph name.
	Prefix string

	// Suffix is appended to every graph name, after any per-graph
	// suffix.
	Suffix string
}

// GraphName assembles a graph name. A non-empty suffix is separated
// from the base with a dash; dirname, when non-empty, is joined in
// front.
func (n Namer) GraphName(base, suffix, dirname string) string {
	if suffix != "" {
		suffix = "-" + suffix
	}
	name := n.Prefix + base + suffix + n.Suffix
	if dirname != "" {
		name = filepath.Join(dirname, name)
	}
	return name
}

// SaveGraph saves a plot under the name of the calling function,
// decorated by the Namer. The optional suffix distinguishes multiple
// graphs produced by one function.
func (n Namer) SaveGraph(plot Saver, suffix, dirname string) error {
	return plot.Save(n.GraphName(CallerName(2), suffix, dirname))
}

// CallerName returns the bare name of a function on the call stack.
// skip counts like in runtime.Caller: 1 is the caller of CallerName,
// 2 the caller's caller.
func CallerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	name := fn.Name()
	// Trim the package path ("pkg/path.Func" or "pkg/path.(*T).Func").
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	// Methods keep only the method name.
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
