package swfimg

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestTagScanner_ShortForm(t *testing.T) {
	var body bytes.Buffer
	writeTag(&body, 1, []byte{0xAA, 0xBB, 0xCC})
	writeTag(&body, 2, nil)

	sc := newTagScanner(body.Bytes())
	if !sc.Next() {
		t.Fatal("expected first tag")
	}
	if got := sc.Tag(); got.code != 1 || !bytes.Equal(got.payload, []byte{0xAA, 0xBB, 0xCC}) {
		t.Fatalf("first tag = %#v", got)
	}
	if !sc.Next() {
		t.Fatal("expected second tag")
	}
	if got := sc.Tag(); got.code != 2 || len(got.payload) != 0 {
		t.Fatalf("second tag = %#v", got)
	}
	if sc.Next() {
		t.Fatal("expected end of stream")
	}
}

func TestTagScanner_ExtendedLength(t *testing.T) {
	payload := make([]byte, 1000)
	for i := range payload {
		payload[i] = byte(i)
	}
	var body bytes.Buffer
	writeTag(&body, 36, payload)

	sc := newTagScanner(body.Bytes())
	if !sc.Next() {
		t.Fatal("expected one tag")
	}
	got := sc.Tag()
	if got.code != 36 || len(got.payload) != 1000 {
		t.Fatalf("tag code=%d len=%d, want 36/1000", got.code, len(got.payload))
	}
	if !bytes.Equal(got.payload, payload) {
		t.Fatal("payload mismatch")
	}
	if sc.Next() {
		t.Fatal("expected end of stream")
	}
}

// The 6-bit field tops out at 62; 63 is the extended-form sentinel, so a
// 63-byte payload must round-trip through the long encoding.
func TestTagScanner_SentinelBoundary(t *testing.T) {
	var body bytes.Buffer
	writeTag(&body, 5, make([]byte, 62))
	writeTag(&body, 5, make([]byte, 63))

	sc := newTagScanner(body.Bytes())
	for _, want := range []int{62, 63} {
		if !sc.Next() {
			t.Fatalf("missing %d-byte tag", want)
		}
		if got := len(sc.Tag().payload); got != want {
			t.Fatalf("payload length = %d, want %d", got, want)
		}
	}
	if sc.Next() {
		t.Fatal("expected end of stream")
	}
}

func TestTagScanner_TruncatedDeclaredLength(t *testing.T) {
	var body bytes.Buffer
	writeTag(&body, 1, []byte{1})
	writeTag(&body, 2, []byte{2, 2})
	// Third tag claims 40 payload bytes but only 3 follow.
	var word [2]byte
	binary.LittleEndian.PutUint16(word[:], 3<<6|40)
	body.Write(word[:])
	body.Write([]byte{9, 9, 9})

	sc := newTagScanner(body.Bytes())
	var codes []uint16
	for sc.Next() {
		codes = append(codes, sc.Tag().code)
	}
	if len(codes) != 2 || codes[0] != 1 || codes[1] != 2 {
		t.Fatalf("codes = %v, want [1 2]", codes)
	}
}

func TestTagScanner_TrailingByte(t *testing.T) {
	sc := newTagScanner([]byte{0x7F})
	if sc.Next() {
		t.Fatal("a single trailing byte must not frame a tag")
	}
}

func TestTagScanner_TruncatedExtendedLength(t *testing.T) {
	// Sentinel word followed by only two of the four length bytes.
	var body bytes.Buffer
	var word [2]byte
	binary.LittleEndian.PutUint16(word[:], 1<<6|tagLengthSentinel)
	body.Write(word[:])
	body.Write([]byte{0x10, 0x00})

	sc := newTagScanner(body.Bytes())
	if sc.Next() {
		t.Fatal("truncated extended length must end the stream")
	}
}

// An extended length with the high bit set overflows int on 32-bit
// platforms; the scanner must treat it as truncation, not panic.
func TestTagScanner_HugeExtendedLength(t *testing.T) {
	var body bytes.Buffer
	var word [2]byte
	binary.LittleEndian.PutUint16(word[:], 1<<6|tagLengthSentinel)
	body.Write(word[:])
	var length [4]byte
	binary.LittleEndian.PutUint32(length[:], 0xFFFFFFFF)
	body.Write(length[:])
	body.Write([]byte{1, 2, 3})

	if newTagScanner(body.Bytes()).Next() {
		t.Fatal("huge declared length must end the stream")
	}
}

func TestTagScanner_EmptyBody(t *testing.T) {
	if newTagScanner(nil).Next() {
		t.Fatal("empty body must yield no tags")
	}
}
