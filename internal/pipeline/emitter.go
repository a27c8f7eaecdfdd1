package pipeline

import (
	"bufio"
	"io"
)

// LineEmitter writes accepted sentences one per line. Output is buffered
// but flushed at article granularity, so a user tailing the output file
// sees progress during a long run.
type LineEmitter struct {
	w *bufio.Writer
}

// NewLineEmitter wraps w.
func NewLineEmitter(w io.Writer) *LineEmitter {
	return &LineEmitter{w: bufio.NewWriter(w)}
}

// Emit writes one sentence followed by a newline.
func (e *LineEmitter) Emit(sentence string) error {
	if _, err := e.w.WriteString(sentence); err != nil {
		return err
	}
	return e.w.WriteByte('\n')
}

// Flush pushes buffered lines to the underlying writer.
func (e *LineEmitter) Flush() error {
	return e.w.Flush()
}
