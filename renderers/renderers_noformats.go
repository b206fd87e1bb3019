//go:build !formats

package renderers

import (
	"fmt"

	"github.com/tdewolff/shapes2d"
	"github.com/tdewolff/shapes2d/renderers/rasterizer"
)

// WebP returns a WebP writer that uses libwebp, which requires building with CGO and the formats tag.
func WebP(opts *rasterizer.Options) shapes2d.Writer {
	return errorWriter(fmt.Errorf("unsupported WebP: build with the formats tag"))
}

// AVIF returns an AVIF writer that uses libaom, which requires building with CGO and the formats tag.
func AVIF(opts *rasterizer.Options) shapes2d.Writer {
	return errorWriter(fmt.Errorf("unsupported AVIF: build with the formats tag"))
}
