package debug

import "fmt"

// Renderer renders formatted text into dst with snprintf semantics:
// at most len(dst)-1 bytes of text are stored, followed by a zero
// terminator, and the returned count is the length of the complete text
// even when it was truncated. A negative count means the text could not
// be rendered.
type Renderer interface {
	Render(dst []byte, format string, args ...interface{}) int
}

// RenderFunc is func type of Renderer.
type RenderFunc func(dst []byte, format string, args ...interface{}) int

// Render implements Renderer.
func (f RenderFunc) Render(dst []byte, format string, args ...interface{}) int {
	return f(dst, format, args...)
}

// FmtRenderer renders with package fmt. A template fmt complains about
// (missing or extra operands, mismatched verbs, bad width or index) is
// reported as a failure, and so is a panic in an operand's String, Error
// or Format method. Operand text is never inspected.
type FmtRenderer struct{}

// Render implements Renderer.
func (FmtRenderer) Render(dst []byte, format string, args ...interface{}) int {
	t := template{format: format, args: args}
	if !t.check() {
		return -1
	}
	var failed bool
	w := boundedWriter{dst: dst}
	fmt.Fprintf(&w, format, t.guard(&failed)...)
	if failed {
		return -1
	}
	if len(dst) > 0 {
		dst[w.n] = 0
	}
	return w.total
}

// boundedWriter copies what fits into dst and counts the rest.
type boundedWriter struct {
	dst   []byte
	n     int
	total int
}

func (w *boundedWriter) Write(p []byte) (int, error) {
	if end := len(w.dst) - 1; w.n < end {
		w.n += copy(w.dst[w.n:end], p)
	}
	w.total += len(p)
	return len(p), nil
}
