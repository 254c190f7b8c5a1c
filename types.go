package swfimg

// SWF signature marker bytes. Bytes 1 and 2 of every valid file are 'W', 'S'.
const (
	sigUncompressed = 'F' // "FWS", plain body
	sigCompressed   = 'C' // "CWS", zlib-compressed body from offset 8
)

// Tag type codes for the two bitmap-bearing tag kinds this package decodes.
const (
	tagDefineBitsJPEG3     = 35
	tagDefineBitsLossless2 = 36
)

const (
	// losslessFormat32Bit is the only DefineBitsLossless2 pixel format
	// supported: row-major 4-byte ARGB tuples.
	losslessFormat32Bit = 5

	// tagLengthSentinel in the 6-bit short length field selects the
	// extended 32-bit length form.
	tagLengthSentinel = 0x3F
)

// tag is one length-framed record from the container body. Tags are
// transient: the payload aliases the normalized buffer and is not
// retained past decoding.
type tag struct {
	code    uint16
	payload []byte
}

// BitmapKind discriminates the two decoded bitmap representations.
type BitmapKind int

const (
	// KindJPEG is a self-contained JPEG byte stream lifted out of a
	// DefineBitsJPEG3 tag.
	KindJPEG BitmapKind = iota
	// KindRaster is a raw RGBA pixel buffer reconstructed from a
	// DefineBitsLossless2 tag.
	KindRaster
)

// BitmapRecord is the intermediate representation of one decoded bitmap
// tag, consumed exactly once by recompression.
type BitmapRecord struct {
	CharacterID uint16
	Kind        BitmapKind
	MIMEType    string

	// KindJPEG only.
	JPEG []byte

	// KindRaster only. Pixels holds Width*Height 4-byte RGBA tuples.
	Width  int
	Height int
	Pixels []byte
}

// CompressedImage is one recompressed bitmap ready for persistence.
type CompressedImage struct {
	CharacterID uint16
	// Payload is the base64-encoded JPEG or PNG output.
	Payload  string
	MIMEType string
	// OriginalSize is the byte length of the decoded form before
	// recompression (JPEG stream length, or inflated raster length).
	OriginalSize int
	// CompressedSize is the byte length of the re-encoded image.
	CompressedSize int
	// Ratio is the size saved by recompression as a percentage, rounded
	// to one fractional digit. Negative when the output grew.
	Ratio float64
}

// Outcome is the per-tag result of Extract. Exactly one of Image and Err
// is set: a decoded and recompressed image, or the reason the tag was
// skipped. Outcomes appear in tag-stream order.
//
// CharacterIDs are not deduplicated; the format permits redefinition and
// collisions across tag kinds, so callers that name files by id must
// handle repeats themselves.
type Outcome struct {
	// TagIndex is the position among the bitmap-bearing tags of the file.
	TagIndex    int
	CharacterID uint16
	Image       *CompressedImage
	Err         error
}
