// Package config holds module-scope interpreter settings: version info,
// recognized source extensions, and the few global toggles the
// interpreter needs (call-stack tracking, gensym seeding).
package config

import "sync/atomic"

// Version is the current lispcore version.
var Version = "0.1.0"

// SourceFileExt is the canonical Cirru source extension.
const SourceFileExt = ".cirru"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".cirru", ".cr"}

// TrimSourceExt removes any recognized source extension from a filename.
// Returns the original string if no extension matches.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt returns true if the path ends with any recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// IsTestMode indicates if the program is running in test mode.
var IsTestMode = false

// CoreNs is the namespace holding the language's own prelude defs.
const CoreNs = "calcit.core"

// ErrorSnapshotFile is the failure snapshot written on an unrecovered error.
const ErrorSnapshotFile = ".calcit-error.cirru"

// trackStack toggles call-stack frame recording. Disabled for performance
// in hot loops; accessed with sequentially-consistent atomics.
var trackStack atomic.Bool

func init() {
	trackStack.Store(true)
}

// TrackStack reports whether call-stack frames are currently recorded.
func TrackStack() bool {
	return trackStack.Load()
}

// SetTrackStack enables or disables call-stack frame recording.
func SetTrackStack(v bool) {
	trackStack.Store(v)
}

// gensymCounter is the monotonic counter backing the source-level `gensym`.
var gensymCounter atomic.Uint64

// codegenSymbolCounter is reset between backend codegen runs; the core
// exposes it as process-wide state the preprocessor/codegen
// collaborator shares.
var codegenSymbolCounter atomic.Uint64

func init() {
	gensymCounter.Store(1)
}

// NextGensym returns the next monotonic gensym index.
func NextGensym() uint64 {
	return gensymCounter.Add(1) - 1
}

// ResetGensymIndex reseeds the gensym counter (the `&reset-gensym-index!` builtin).
func ResetGensymIndex() {
	gensymCounter.Store(1)
}

// NextCodegenSymbol returns the next backend-codegen symbol index.
func NextCodegenSymbol() uint64 {
	return codegenSymbolCounter.Add(1) - 1
}

// ResetCodegenSymbolIndex reseeds the codegen-symbol counter between runs.
func ResetCodegenSymbolIndex() {
	codegenSymbolCounter.Store(0)
}
