package port

import (
	"context"
	"image"

	"iconsmith/internal/core/domain"
)

type Renderer interface {
	// Render rasterizes the motif described by spec onto a square canvas and
	// returns a frame with exactly spec.Size by spec.Size bounds.
	Render(ctx context.Context, spec domain.IconSpec) (image.Image, error)
}
