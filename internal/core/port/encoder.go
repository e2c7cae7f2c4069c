package port

import "image"

type Encoder interface {
	// EncodePNG serializes a single rendered frame to PNG bytes.
	EncodePNG(frame image.Image) ([]byte, error)
	// EncodeICO packs all given frames into one ICO container, preserving
	// their order and dimensions.
	EncodeICO(frames []image.Image) ([]byte, error)
}
