package report

import "sync"

// Enumeration of the different possible log levels, in the same order and
// with the same meaning as the teacher's logger: silent, errors only,
// errors+warnings, everything (default).
const (
	LogLevelSilent  = iota
	LogLevelError
	LogLevelWarn
	LogLevelVerbose
)

// Reporter accumulates and displays diagnostics produced while running the
// core over one compilation unit. It is synchronized so that it can be
// shared across concurrently-checked definitions.
type Reporter struct {
	m        sync.Mutex
	logLevel int
	errors   []*CompileError
	srcPath  string
	srcLines []string
}

// NewReporter creates a reporter at the given log level for diagnostics
// about the file at srcPath. srcLines, if non-nil, is used to render source
// excerpts under each error; pass nil to suppress excerpts (e.g. in tests
// that construct ASTs directly, with no backing source file).
func NewReporter(logLevel int, srcPath string, srcLines []string) *Reporter {
	return &Reporter{logLevel: logLevel, srcPath: srcPath, srcLines: srcLines}
}

// Report records a compile error and, if the log level permits, displays it
// immediately. It returns the same error for convenient `return r.Report(err)`
// call sites.
func (r *Reporter) Report(err *CompileError) *CompileError {
	r.m.Lock()
	defer r.m.Unlock()

	r.errors = append(r.errors, err)

	if r.logLevel > LogLevelSilent {
		displayCompileError(err, r.srcLines)
	}

	return err
}

// AnyErrors reports whether any error has been recorded.
func (r *Reporter) AnyErrors() bool {
	r.m.Lock()
	defer r.m.Unlock()
	return len(r.errors) > 0
}

// Errors returns the errors recorded so far, in report order.
func (r *Reporter) Errors() []*CompileError {
	r.m.Lock()
	defer r.m.Unlock()
	out := make([]*CompileError, len(r.errors))
	copy(out, r.errors)
	return out
}
