package connection

import (
	"bufio"
	"io"
)

// TokenReader blocks until the next whitespace delimited token is
// available. It returns io.EOF when the input is exhausted.
type TokenReader interface {
	ReadToken() (string, error)
}

type LineWriter interface {
	WriteLine(line string) error
}

type ConsoleReader struct {
	scanner *bufio.Scanner
}

var _ TokenReader = (*ConsoleReader)(nil)

func NewConsoleReader(r io.Reader) *ConsoleReader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &ConsoleReader{scanner: scanner}
}

func (cr *ConsoleReader) ReadToken() (string, error) {
	if cr.scanner.Scan() {
		return cr.scanner.Text(), nil
	}
	if err := cr.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

type ConsoleWriter struct {
	w *bufio.Writer
}

var _ LineWriter = (*ConsoleWriter)(nil)

func NewConsoleWriter(w io.Writer) *ConsoleWriter {
	return &ConsoleWriter{w: bufio.NewWriter(w)}
}

// WriteLine flushes after every line so prompts show up before the read.
func (cw *ConsoleWriter) WriteLine(line string) error {
	if _, err := cw.w.WriteString(line + "\n"); err != nil {
		return err
	}
	return cw.w.Flush()
}
