package swfimg

import "encoding/binary"

// tagScanner frames tag records from the body of a normalized buffer.
// Each record starts with a little-endian 16-bit word: the top 10 bits
// are the type code, the low 6 bits the payload length. A length field
// of all ones means the true length follows as a 32-bit word.
type tagScanner struct {
	buf []byte
	pos int
	cur tag
}

func newTagScanner(body []byte) *tagScanner {
	return &tagScanner{buf: body}
}

// Next advances to the next tag, returning false at the end of the
// stream. A truncated stream terminates the scan cleanly: fewer than two
// bytes left for a length word, or a declared payload overrunning the
// buffer, ends iteration without error and whatever was framed before
// that point stands.
func (s *tagScanner) Next() bool {
	if len(s.buf)-s.pos < 2 {
		return false
	}
	word := binary.LittleEndian.Uint16(s.buf[s.pos:])
	s.pos += 2
	length := int(word & tagLengthSentinel)
	if length == tagLengthSentinel {
		if len(s.buf)-s.pos < 4 {
			return false
		}
		length = int(binary.LittleEndian.Uint32(s.buf[s.pos:]))
		s.pos += 4
	}
	// length goes negative on 32-bit platforms for declared lengths
	// over 2^31; treat that as truncation like any other overrun.
	if length < 0 || length > len(s.buf)-s.pos {
		return false
	}
	s.cur = tag{code: word >> 6, payload: s.buf[s.pos : s.pos+length]}
	s.pos += length
	return true
}

// Tag returns the record framed by the last successful Next.
func (s *tagScanner) Tag() tag {
	return s.cur
}
