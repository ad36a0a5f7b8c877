// Package iostreams provides structured access to standard streams with
// convenience methods for formatted output, plus a quiet wrapper that
// suppresses progress output unless verbose mode is requested.
package iostreams

import (
	"fmt"
	"io"
)

// Interface abstracts the stream access used across commands, enabling tests
// to capture output.
type Interface interface {
	// In returns the input stream
	In() io.Reader

	// Out returns the output stream (results)
	Out() io.Writer

	// ErrOut returns the error/progress stream
	ErrOut() io.Writer

	// Fprintf writes formatted output to Out with automatic newline
	Fprintf(format string, args ...any)

	// Fprintln writes output to Out with automatic newline
	Fprintln(args ...any)

	// Errorf writes formatted progress/error output to ErrOut with
	// automatic newline
	Errorf(format string, args ...any)

	// Errorln writes output to ErrOut with automatic newline
	Errorln(args ...any)
}

// IOStreams is the standard Interface implementation backed by arbitrary
// reader/writers.
type IOStreams struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewIOStreams creates an IOStreams over the given streams.
func NewIOStreams(in io.Reader, out io.Writer, errOut io.Writer) *IOStreams {
	return &IOStreams{
		in:     in,
		out:    out,
		errOut: errOut,
	}
}

func (s *IOStreams) In() io.Reader {
	return s.in
}

func (s *IOStreams) Out() io.Writer {
	return s.out
}

func (s *IOStreams) ErrOut() io.Writer {
	return s.errOut
}

// Fprintf writes formatted output to Out with automatic newline. If no args
// are provided the format string is written directly.
func (s *IOStreams) Fprintf(format string, args ...any) {
	writeLine(s.out, format, args...)
}

// Fprintln writes output to Out with automatic newline.
func (s *IOStreams) Fprintln(args ...any) {
	if s.out == nil {
		return
	}

	_, _ = fmt.Fprintln(s.out, args...)
}

// Errorf writes formatted output to ErrOut with automatic newline. If no args
// are provided the format string is written directly.
func (s *IOStreams) Errorf(format string, args ...any) {
	writeLine(s.errOut, format, args...)
}

// Errorln writes output to ErrOut with automatic newline.
func (s *IOStreams) Errorln(args ...any) {
	if s.errOut == nil {
		return
	}

	_, _ = fmt.Fprintln(s.errOut, args...)
}

func writeLine(w io.Writer, format string, args ...any) {
	if w == nil {
		// Gracefully handle nil writer - silently ignore
		return
	}

	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}

	_, _ = fmt.Fprintln(w, message)
}

// QuietWrapper suppresses progress output written via Errorf/Errorln while
// passing result output through. Commands wrap their streams with it unless
// verbose mode is enabled.
type QuietWrapper struct {
	inner Interface
}

// NewQuietWrapper wraps an Interface, silencing the error/progress methods.
func NewQuietWrapper(inner Interface) *QuietWrapper {
	return &QuietWrapper{inner: inner}
}

func (q *QuietWrapper) In() io.Reader {
	return q.inner.In()
}

func (q *QuietWrapper) Out() io.Writer {
	return q.inner.Out()
}

func (q *QuietWrapper) ErrOut() io.Writer {
	return q.inner.ErrOut()
}

func (q *QuietWrapper) Fprintf(format string, args ...any) {
	q.inner.Fprintf(format, args...)
}

func (q *QuietWrapper) Fprintln(args ...any) {
	q.inner.Fprintln(args...)
}

// Errorf is suppressed in quiet mode.
func (q *QuietWrapper) Errorf(string, ...any) {}

// Errorln is suppressed in quiet mode.
func (q *QuietWrapper) Errorln(...any) {}
