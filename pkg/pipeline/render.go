package pipeline

import (
	"fmt"

	"github.com/KuroiKoyani/pareto-chart/pkg/pareto"
	"github.com/KuroiKoyani/pareto-chart/pkg/render"
	"github.com/KuroiKoyani/pareto-chart/pkg/render/raster"
	"github.com/KuroiKoyani/pareto-chart/pkg/theme"
)

// RenderArtifacts generates output artifacts in the requested formats from a
// built series and its projected geometry.
func RenderArtifacts(s pareto.Series, geom pareto.Geometry, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	th, err := opts.ResolveTheme()
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = renderSVG(s, geom, th)
		case FormatPNG:
			data, err = raster.Render(s, th, raster.Options{
				Width:  int(opts.Width),
				Height: int(opts.Height),
			})
		case FormatJSON:
			data, err = MarshalDocument(Document{Series: s, Geometry: geom})
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderSVG runs one sync against a fresh element state and encodes it.
// Batch output has no prior state to reconcile against, so every element
// enters; the encoder then walks elements in index order for deterministic
// bytes.
func renderSVG(s pareto.Series, geom pareto.Geometry, th *theme.Theme) []byte {
	st := render.NewState()
	st.Sync(s, geom, th)
	return render.EncodeSVG(st, th)
}
