package keyboard

import "testing"

func TestEncodeTable(t *testing.T) {
	cases := []struct {
		key  Key
		want string
	}{
		{KeyEnter, "\r"},
		{KeyTab, "\t"},
		{KeyBackspace, "\x7f"},
		{KeyEscape, "\x1b"},
		{KeyArrowUp, "\x1b[A"},
		{KeyArrowDown, "\x1b[B"},
		{KeyArrowRight, "\x1b[C"},
		{KeyArrowLeft, "\x1b[D"},
		{KeyHome, "\x1b[H"},
		{KeyEnd, "\x1b[F"},
		{KeyPageUp, "\x1b[5~"},
		{KeyPageDown, "\x1b[6~"},
		{KeyInsert, "\x1b[2~"},
		{KeyDelete, "\x1b[3~"},
		{KeyF1, "\x1bOP"},
		{KeyF4, "\x1bOS"},
		{KeyF5, "\x1b[15~"},
		{KeyF12, "\x1b[24~"},
	}

	for _, tc := range cases {
		got, err := Encode(tc.key)
		if err != nil {
			t.Fatalf("Encode(%d): unexpected error: %v", tc.key, err)
		}
		if string(got) != tc.want {
			t.Errorf("Encode(%d): expected %q, got %q", tc.key, tc.want, string(got))
		}
	}
}

func TestEncodeCtrl(t *testing.T) {
	got, err := EncodeCtrl('c')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != 0x03 {
		t.Errorf("expected Ctrl+C to encode to 0x03, got %v", got)
	}

	if _, err := EncodeCtrl('1'); err == nil {
		t.Error("expected error for non-letter input")
	}
}
