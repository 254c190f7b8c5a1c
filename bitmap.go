package swfimg

import (
	"encoding/binary"
	"fmt"
)

// decodeBitmapTag decodes one bitmap-bearing tag into a BitmapRecord.
// Tags of any other type code return (nil, nil). A malformed payload
// returns a non-nil error; such errors are soft, the caller drops the
// tag and keeps going.
func decodeBitmapTag(t tag, limits Limits) (*BitmapRecord, error) {
	switch t.code {
	case tagDefineBitsJPEG3:
		return decodeJPEG3(t.payload)
	case tagDefineBitsLossless2:
		return decodeLossless2(t.payload, limits)
	}
	return nil, nil
}

// tagCharacterID reads the character id every bitmap tag carries in its
// first two bytes, for reporting on tags too broken to decode.
func tagCharacterID(t tag) uint16 {
	if len(t.payload) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(t.payload)
}

// decodeJPEG3 lifts the JPEG stream out of a DefineBitsJPEG3 payload:
// a 2-byte character id, a 4-byte offset to the trailing alpha plane,
// then the JPEG bytes up to that offset.
//
// The alpha plane is deliberately not composited; extraction is
// opaque-only.
func decodeJPEG3(p []byte) (*BitmapRecord, error) {
	if len(p) < 6 {
		return nil, fmt.Errorf("%w: jpeg tag: payload is %d bytes, want at least 6", ErrInvalidTagPayload, len(p))
	}
	id := binary.LittleEndian.Uint16(p[0:2])
	imageLen := int(binary.LittleEndian.Uint32(p[2:6]))
	if imageLen < 0 || imageLen > len(p)-6 {
		return nil, fmt.Errorf("%w: jpeg tag %d: declared %d image bytes, payload has %d", ErrInvalidTagPayload, id, uint32(imageLen), len(p)-6)
	}
	return &BitmapRecord{
		CharacterID: id,
		Kind:        KindJPEG,
		MIMEType:    "image/jpeg",
		JPEG:        p[6 : 6+imageLen],
	}, nil
}

// decodeLossless2 reconstructs the raster from a DefineBitsLossless2
// payload: a 2-byte character id, a pixel format byte, 2-byte width and
// height, and a zlib stream of pixel data. Only format 5 (32-bit ARGB)
// is supported; the tuples are reordered to RGBA.
//
// The inflate is capped at the declared width*height*4 bytes; a stream
// expanding past the raster it declares is treated as corrupt. A stream
// that inflates short stops the fill at the last complete pixel and
// leaves the rest zero.
func decodeLossless2(p []byte, limits Limits) (*BitmapRecord, error) {
	if len(p) < 7 {
		return nil, fmt.Errorf("%w: lossless tag: payload is %d bytes, want at least 7", ErrInvalidTagPayload, len(p))
	}
	id := binary.LittleEndian.Uint16(p[0:2])
	format := p[2]
	width := int(binary.LittleEndian.Uint16(p[3:5]))
	height := int(binary.LittleEndian.Uint16(p[5:7]))
	if format != losslessFormat32Bit {
		return nil, fmt.Errorf("%w: tag %d declares format %d", ErrUnsupportedBitmapFormat, id, format)
	}
	rasterBytes := uint64(width) * uint64(height) * 4
	if rasterBytes > limits.MaxRasterBytes {
		return nil, fmt.Errorf("%w: tag %d: %dx%d raster exceeds the %d byte limit", ErrDecompression, id, width, height, limits.MaxRasterBytes)
	}
	raw, err := zlibInflate(p[7:], rasterBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: tag %d: %v", ErrDecompression, id, err)
	}

	pixels := make([]byte, rasterBytes)
	n := len(raw) / 4
	if n > width*height {
		n = width * height
	}
	for i := 0; i < n; i++ {
		pixels[i*4+0] = raw[i*4+1] // R
		pixels[i*4+1] = raw[i*4+2] // G
		pixels[i*4+2] = raw[i*4+3] // B
		pixels[i*4+3] = raw[i*4+0] // A
	}
	return &BitmapRecord{
		CharacterID: id,
		Kind:        KindRaster,
		MIMEType:    "image/png",
		Width:       width,
		Height:      height,
		Pixels:      pixels,
	}, nil
}
