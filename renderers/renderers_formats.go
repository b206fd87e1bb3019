//go:build formats

package renderers

import (
	"io"

	"github.com/Kagami/go-avif"
	webp "github.com/kolesa-team/go-webp/encoder"
	"github.com/tdewolff/shapes2d"
	"github.com/tdewolff/shapes2d/renderers/rasterizer"
)

// WebP returns a WebP writer that uses libwebp with lossless encoding.
func WebP(opts *rasterizer.Options) shapes2d.Writer {
	return func(w io.Writer, b *shapes2d.Batch, width, height float64) error {
		img := rasterizer.Draw(b, width, height, opts)
		options, err := webp.NewLosslessEncoderOptions(webp.PresetDefault, 6)
		if err != nil {
			return err
		}
		enc, err := webp.NewEncoder(img, options)
		if err != nil {
			return err
		}
		return enc.Encode(w)
	}
}

// AVIF returns an AVIF writer that uses libaom.
func AVIF(opts *rasterizer.Options) shapes2d.Writer {
	return func(w io.Writer, b *shapes2d.Batch, width, height float64) error {
		img := rasterizer.Draw(b, width, height, opts)
		return avif.Encode(w, img, nil)
	}
}
