package encoder

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"iconsmith/internal/core/domain"

	"github.com/rs/zerolog/log"
	ico "github.com/sergeymakinen/go-ico"
)

// ImageEncoder serializes rendered frames into the on-disk formats: PNG for
// the individual icons and ICO for the optional multi-size bundle.
type ImageEncoder struct{}

func NewImageEncoder() *ImageEncoder {
	return &ImageEncoder{}
}

func (e *ImageEncoder) EncodePNG(frame image.Image) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, frame); err != nil {
		err = fmt.Errorf("error encoding png %w", err)
		log.Error().Err(err).Send()
		return nil, err
	}

	log.Debug().Int("bytes", buf.Len()).Msg("encoded png frame")

	return buf.Bytes(), nil
}

func (e *ImageEncoder) EncodeICO(frames []image.Image) ([]byte, error) {
	if len(frames) == 0 {
		return nil, domain.ErrNoFrames
	}

	buf := &bytes.Buffer{}
	if err := ico.EncodeAll(buf, frames); err != nil {
		err = fmt.Errorf("error encoding ico %w", err)
		log.Error().Err(err).Send()
		return nil, err
	}

	log.Debug().Int("bytes", buf.Len()).Int("frames", len(frames)).Msg("encoded ico bundle")

	return buf.Bytes(), nil
}
