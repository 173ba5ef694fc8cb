package input

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrInterrupted is returned when Ctrl+C is read in raw mode
var ErrInterrupted = errors.New("interrupted")

var stdinReader *bufio.Reader

// GetInput reads a line of input from stdin
func GetInput() (string, error) {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}

	line, err := stdinReader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// decodeKey reads one key press from r. Arrow keys come back as
// "arrow_up" and friends, Enter as "enter", a lone Escape as "escape" and
// printable characters as themselves.
func decodeKey(r io.ByteReader) (string, error) {
	b1, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b1 == 3:
		return "", ErrInterrupted
	case b1 == '\n' || b1 == '\r':
		return "enter", nil
	case b1 == 0x1b:
		return decodeEscape(r)
	case b1 >= 32 && b1 < 127:
		return strings.ToLower(string(b1)), nil
	}
	return "", nil
}

// decodeEscape handles the bytes after ESC. Both CSI (ESC [) and SS3
// (ESC O) arrow sequences are recognised.
func decodeEscape(r io.ByteReader) (string, error) {
	b2, err := r.ReadByte()
	if err == io.EOF {
		return "escape", nil
	}
	if err != nil {
		return "", err
	}
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}

	b3, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	// Unknown escape sequence - discard it
	return "", nil
}

// byteReader reads a single byte at a time so raw mode delivers keys as
// soon as they are pressed
type byteReader struct {
	f *os.File
}

func (b byteReader) ReadByte() (byte, error) {
	buf := make([]byte, 1)
	if _, err := b.f.Read(buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadKey reads a single key press from f without waiting for Enter. When f
// is not a terminal a whole line is read instead and returned lowercased.
func ReadKey(f *os.File) (RawInput, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		line, err := GetInput()
		return NewRawInput(DeviceTerminal, strings.ToLower(line)), err
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return RawInput{}, err
	}
	defer term.Restore(fd, oldState)

	code, err := decodeKey(byteReader{f})
	return NewRawInput(DeviceKeyboard, code), err
}
