package service

import (
	"context"
	"image"

	"iconsmith/internal/core/domain"
	"iconsmith/internal/core/port"

	"github.com/rs/zerolog/log"
)

type IconService struct {
	renderer port.Renderer
	encoder  port.Encoder
	writer   port.ArtifactWriter
}

func NewIconService(renderer port.Renderer, encoder port.Encoder, writer port.ArtifactWriter) *IconService {
	return &IconService{renderer: renderer, encoder: encoder, writer: writer}
}

// GenerateAll renders, encodes and writes every icon in the set, then the
// optional ICO bundle. The first failure aborts the run.
func (s *IconService) GenerateAll(ctx context.Context, set domain.IconSet) error {
	if len(set.Sizes) == 0 {
		log.Error().Msg("refusing to generate empty icon set")
		return domain.ErrNoSizes
	}

	if err := s.writer.EnsureDir(set.OutputDir); err != nil {
		return err
	}

	frames := make([]image.Image, 0, len(set.Sizes))

	for _, size := range set.Sizes {
		l := log.With().
			Int("size", size).
			Str("dir", set.OutputDir).
			Logger()

		if err := ctx.Err(); err != nil {
			l.Warn().Err(err).Msg("generation aborted")
			return err
		}

		spec := domain.IconSpec{
			Size:        size,
			Palette:     set.Palette,
			Supersample: set.Supersample,
		}

		frame, err := s.renderer.Render(ctx, spec)
		if err != nil {
			l.Error().Err(err).Msg("rendering failed")
			return err
		}

		data, err := s.encoder.EncodePNG(frame)
		if err != nil {
			l.Error().Err(err).Msg("encoding failed")
			return err
		}

		name := set.FileName(size)
		if err := s.writer.Write(set.OutputDir, name, data); err != nil {
			l.Error().Err(err).Str("file", name).Msg("writing failed")
			return err
		}

		l.Info().Str("file", name).Msg("created icon")
		frames = append(frames, frame)
	}

	if set.BundleName != "" {
		if err := s.writeBundle(set, frames); err != nil {
			return err
		}
	}

	log.Info().Int("count", len(frames)).Str("dir", set.OutputDir).Msg("icon set generated")

	return nil
}

func (s *IconService) writeBundle(set domain.IconSet, frames []image.Image) error {
	l := log.With().
		Str("file", set.BundleName).
		Str("dir", set.OutputDir).
		Logger()

	data, err := s.encoder.EncodeICO(frames)
	if err != nil {
		l.Error().Err(err).Msg("bundling failed")
		return err
	}

	if err := s.writer.Write(set.OutputDir, set.BundleName, data); err != nil {
		l.Error().Err(err).Msg("writing bundle failed")
		return err
	}

	l.Info().Int("frames", len(frames)).Msg("created bundle")

	return nil
}
