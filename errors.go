package swfimg

import "errors"

var (
	// Fatal: returned from Extract and Normalize for the whole file.
	ErrUnsupportedFormat = errors.New("swfimg: unsupported container signature")
	ErrTruncatedHeader   = errors.New("swfimg: truncated container header")

	// Soft: carried in Outcome.Err for the affected tag only.
	ErrInvalidTagPayload       = errors.New("swfimg: invalid bitmap tag payload")
	ErrUnsupportedBitmapFormat = errors.New("swfimg: unsupported bitmap pixel format")
	ErrDecompression           = errors.New("swfimg: pixel stream decompression failed")
	ErrRecompression           = errors.New("swfimg: image recompression failed")
)
