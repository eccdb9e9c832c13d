package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio пишет в out и читает из in.
// Символы отметок используются только если out это терминал.
type Stdio struct {
	in       io.Reader
	out      io.Writer
	terminal bool
}

// NewStdio создаёт IO поверх os.Stdin/os.Stdout
func NewStdio() IO {
	return &Stdio{
		in:       os.Stdin,
		out:      os.Stdout,
		terminal: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// NewStream создаёт IO поверх произвольных потоков (не терминал)
func NewStream(in io.Reader, out io.Writer) IO {
	return &Stdio{in: in, out: out}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	reader := bufio.NewReader(s.in)
	input, err := reader.ReadString('\n')
	if err != nil && !(err == io.EOF && input != "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (s *Stdio) Mark(ok bool) string {
	switch {
	case s.terminal && ok:
		return "✓"
	case s.terminal:
		return "⚠️ "
	case ok:
		return "[ok]"
	default:
		return "[warn]"
	}
}
