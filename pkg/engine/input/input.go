// Package input reads commands for the interactive level browser from a
// terminal or any line-oriented reader.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrInterrupted is returned when Ctrl+C is read in raw mode.
var ErrInterrupted = errors.New("input: interrupted")

// Reader turns lines of input into intents.
type Reader struct {
	r *bufio.Reader
	// Echo receives typed characters in raw mode.
	Echo io.Writer
	// Raw enables single-key arrow handling when stdin is a terminal.
	Raw bool
}

// NewReader creates a Reader over r. Raw mode is only used when r is stdin
// and stdin is a terminal.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r:    bufio.NewReader(r),
		Echo: os.Stdout,
		Raw:  r == os.Stdin && term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// Next reads one intent. io.EOF is returned unchanged once input ends.
func (in *Reader) Next() (Intent, error) {
	var (
		line string
		err  error
	)
	if in.Raw {
		line, err = in.readRaw()
	} else {
		line, err = in.readLine()
	}
	if err != nil {
		return Intent{}, err
	}
	return MapToIntent(line), nil
}

func (in *Reader) readLine() (string, error) {
	line, err := in.r.ReadString('\n')
	if err != nil {
		// A final unterminated line still counts.
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// tryReadArrowKey attempts to read an arrow key escape sequence after an
// ESC byte. A lone ESC is reported as "escape".
func (in *Reader) tryReadArrowKey() string {
	b2, err := in.r.ReadByte()
	if err != nil {
		return "escape"
	}

	// CSI (ESC [) and SS3 (ESC O) sequences
	if b2 != '[' && b2 != 'O' {
		return "escape"
	}

	b3, err := in.r.ReadByte()
	if err != nil {
		return ""
	}
	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

// readRaw puts the terminal in raw mode so arrow keys act immediately.
// Other input is collected until Enter.
func (in *Reader) readRaw() (string, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("input: raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	var buf []byte
	for {
		b, err := in.r.ReadByte()
		if err != nil {
			return "", err
		}

		switch {
		case b == 0x1b:
			// Arrows only count on an empty line
			if code := in.tryReadArrowKey(); code != "" && len(buf) == 0 {
				fmt.Fprint(in.Echo, "\r\n")
				return code, nil
			}
		case b == 3:
			fmt.Fprint(in.Echo, "\r\n")
			return "", ErrInterrupted
		case b == '\n' || b == '\r':
			fmt.Fprint(in.Echo, "\r\n")
			return string(buf), nil
		case b == 127 || b == 8:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				fmt.Fprint(in.Echo, "\b \b")
			}
		case b >= 32 && b < 127:
			buf = append(buf, b)
			fmt.Fprint(in.Echo, string(b))
		}
	}
}
