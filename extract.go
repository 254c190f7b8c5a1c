package swfimg

import "sync"

// Extract runs the full pipeline over one complete SWF file held in
// memory: normalize the container, locate the tag stream, decode every
// DefineBitsJPEG3 and DefineBitsLossless2 tag, and recompress each
// decoded bitmap as JPEG or PNG.
//
// The returned outcomes are in tag-stream order, one per bitmap-bearing
// tag, each carrying either a CompressedImage or the soft error that
// skipped it. Extract itself fails only for ErrUnsupportedFormat or
// ErrTruncatedHeader; a valid container with nothing to decode yields an
// empty slice and a nil error.
func Extract(data []byte, opts ...Option) ([]Outcome, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	buf, err := normalize(data, cfg.limits)
	if err != nil {
		return nil, err
	}
	offset, err := headerSize(buf)
	if err != nil {
		return nil, err
	}
	if offset > len(buf) {
		offset = len(buf)
	}

	type job struct {
		index int
		rec   *BitmapRecord
	}
	var outcomes []Outcome
	var jobs []job

	sc := newTagScanner(buf[offset:])
	for sc.Next() {
		t := sc.Tag()
		if t.code != tagDefineBitsJPEG3 && t.code != tagDefineBitsLossless2 {
			continue
		}
		rec, err := decodeBitmapTag(t, cfg.limits)
		if err != nil {
			cfg.logger.Warn("skipping bitmap tag",
				"code", t.code, "character", tagCharacterID(t), "error", err)
			outcomes = append(outcomes, Outcome{
				TagIndex:    len(outcomes),
				CharacterID: tagCharacterID(t),
				Err:         err,
			})
			continue
		}
		outcomes = append(outcomes, Outcome{
			TagIndex:    len(outcomes),
			CharacterID: rec.CharacterID,
		})
		jobs = append(jobs, job{index: len(outcomes) - 1, rec: rec})
	}

	// Each recompression is independent; fan out over a bounded pool
	// and fan in by tag index. Jobs touch disjoint outcome slots, so no
	// locking is needed.
	run := func(j job) {
		img, err := recompress(j.rec, cfg)
		if err != nil {
			cfg.logger.Warn("skipping bitmap",
				"character", j.rec.CharacterID, "error", err)
			outcomes[j.index].Err = err
			return
		}
		outcomes[j.index].Image = img
	}

	workers := cfg.concurrency
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers <= 1 {
		for _, j := range jobs {
			run(j)
		}
		return outcomes, nil
	}

	ch := make(chan job)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range ch {
				run(j)
			}
		}()
	}
	for _, j := range jobs {
		ch <- j
	}
	close(ch)
	wg.Wait()
	return outcomes, nil
}

// Images projects the successfully recompressed images out of outcomes,
// preserving tag-stream order.
func Images(outcomes []Outcome) []CompressedImage {
	imgs := make([]CompressedImage, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Image != nil {
			imgs = append(imgs, *o.Image)
		}
	}
	return imgs
}
