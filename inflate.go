package swfimg

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Function variable for testing injection. The inflated size is capped
// at max bytes; a stream expanding beyond that is an error, and the
// excess is never read into memory.
var zlibInflate = func(data []byte, max uint64) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	out, err := io.ReadAll(io.LimitReader(r, int64(max)+1))
	if err != nil {
		return nil, err
	}
	if uint64(len(out)) > max {
		return nil, fmt.Errorf("stream inflates beyond the %d byte limit", max)
	}
	return out, nil
}
