package render

import "errors"

// The render error taxonomy. Messages wrapping these sentinels stay
// user-safe; engine and compiler internals go to the log, never into the
// returned error text.
var (
	// ErrRenderingFailed means the template engine could not produce
	// markup from a valid render model.
	ErrRenderingFailed = errors.New("rendering failed")
	// ErrCompilationFailed means the external compiler reported an error.
	ErrCompilationFailed = errors.New("compilation failed")
	// ErrCompilationTimeout means the wall-clock budget elapsed (or the
	// caller went away) before the compiler finished. Distinct from
	// ErrCompilationFailed so callers can retry with simpler content.
	ErrCompilationTimeout = errors.New("compilation timed out")
	// ErrUnsafeContent means unescaped caller content was about to reach
	// the compiler. This indicates a mapper or template-author bug; it is
	// reported, never silently sanitized.
	ErrUnsafeContent = errors.New("unsafe content detected")
	// ErrLocaleUnsupported means the template declares locales and the
	// requested one is not among them.
	ErrLocaleUnsupported = errors.New("locale not supported by template")
)
