package swfimg

// Limits caps the memory a crafted file can demand during decoding.
// A zero field keeps its default.
type Limits struct {
	// MaxBodyBytes caps the inflated body of a compressed container.
	// The effective cap is the smaller of this and the total length the
	// file header declares for its uncompressed layout.
	MaxBodyBytes uint64
	// MaxRasterBytes caps the pixel data of a single lossless bitmap
	// tag. The per-tag inflate is additionally capped at the declared
	// width*height*4.
	MaxRasterBytes uint64
}

func defaultLimits() Limits {
	return Limits{
		MaxBodyBytes:   1 << 30,   // 1 GiB
		MaxRasterBytes: 256 << 20, // 256 MiB
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxBodyBytes == 0 {
		l.MaxBodyBytes = d.MaxBodyBytes
	}
	if l.MaxRasterBytes == 0 {
		l.MaxRasterBytes = d.MaxRasterBytes
	}
	return l
}
