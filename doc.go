// Package swfimg extracts embedded bitmap assets from SWF files and
// re-encodes them as standard raster images.
//
// # File Format Overview
//
// An SWF file consists of:
//   - An 8-byte fixed header with a 3-byte signature, version, and total length
//   - A variable-width RECT describing the display bounds, plus frame rate
//     and frame count
//   - A body of length-framed tag records, each carrying a 10-bit type code
//     and a 6-bit or extended 32-bit payload length
//
// Files whose signature is "CWS" carry a zlib-compressed body; Normalize
// inflates them to the canonical "FWS" layout before parsing.
//
// Of the many tag kinds the format defines, this package decodes exactly
// two: DefineBitsJPEG3 (an embedded JPEG stream with a trailing alpha
// plane) and DefineBitsLossless2 (a zlib-compressed 32-bit ARGB raster).
// Every other tag is skipped; rendering vector shapes or timelines is out
// of scope.
//
// # Basic Usage
//
// To extract and recompress every bitmap in a file:
//
//	data, _ := os.ReadFile("movie.swf")
//	outcomes, err := swfimg.Extract(data, swfimg.WithQuality(85))
//	if err != nil {
//		// the container itself was unreadable
//	}
//	for _, img := range swfimg.Images(outcomes) {
//		fmt.Println(img.CharacterID, img.MIMEType, img.Ratio)
//	}
//
// Extract fails only when the container signature or header is unusable.
// Individual tags that cannot be decoded or re-encoded are reported as
// skipped outcomes and never abort the file; a valid container with no
// decodable bitmaps yields an empty, successful sequence.
package swfimg
