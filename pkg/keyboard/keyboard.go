// Package keyboard encodes key events into the outbound byte sequences a
// terminal core expects to receive, per the keyboard encoding table the
// core documents as part of the overall terminal's contract (spec §6) while
// placing the encoder itself out of the core's own scope.
package keyboard

import "fmt"

// Key identifies a named key. Printable characters are sent by the caller
// directly and never pass through Encode.
type Key int

const (
	KeyEnter Key = iota
	KeyTab
	KeyBackspace
	KeyEscape
	KeyArrowUp
	KeyArrowDown
	KeyArrowRight
	KeyArrowLeft
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var simpleEncodings = map[Key][]byte{
	KeyEnter:     {'\r'},
	KeyTab:       {'\t'},
	KeyBackspace: {0x7f},
	KeyEscape:    {0x1b},
	KeyArrowUp:    []byte("\x1b[A"),
	KeyArrowDown:  []byte("\x1b[B"),
	KeyArrowRight: []byte("\x1b[C"),
	KeyArrowLeft:  []byte("\x1b[D"),
	KeyHome:       []byte("\x1b[H"),
	KeyEnd:        []byte("\x1b[F"),
	KeyPageUp:     []byte("\x1b[5~"),
	KeyPageDown:   []byte("\x1b[6~"),
	KeyInsert:     []byte("\x1b[2~"),
	KeyDelete:     []byte("\x1b[3~"),
	KeyF1:         []byte("\x1bOP"),
	KeyF2:         []byte("\x1bOQ"),
	KeyF3:         []byte("\x1bOR"),
	KeyF4:         []byte("\x1bOS"),
	KeyF5:         []byte("\x1b[15~"),
	KeyF6:         []byte("\x1b[17~"),
	KeyF7:         []byte("\x1b[18~"),
	KeyF8:         []byte("\x1b[19~"),
	KeyF9:         []byte("\x1b[20~"),
	KeyF10:        []byte("\x1b[21~"),
	KeyF11:        []byte("\x1b[23~"),
	KeyF12:        []byte("\x1b[24~"),
}

// Encode returns the outbound bytes for a named key. The returned slice must
// not be mutated by the caller — it aliases a shared static table entry.
func Encode(k Key) ([]byte, error) {
	b, ok := simpleEncodings[k]
	if !ok {
		return nil, fmt.Errorf("keyboard: unknown key %d", k)
	}
	return b, nil
}

// EncodeCtrl returns the single-byte encoding for Ctrl+letter (A-Z or a-z),
// mapping to the corresponding 0x01-0x1A control byte.
func EncodeCtrl(letter rune) ([]byte, error) {
	switch {
	case letter >= 'a' && letter <= 'z':
		return []byte{byte(letter - 'a' + 1)}, nil
	case letter >= 'A' && letter <= 'Z':
		return []byte{byte(letter - 'A' + 1)}, nil
	default:
		return nil, fmt.Errorf("keyboard: %q is not a letter", letter)
	}
}
