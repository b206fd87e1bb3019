package renderers

import (
	"fmt"
	"image/gif"
	"image/jpeg"
	"io"
	"path/filepath"
	"strings"

	"github.com/tdewolff/shapes2d"
	"github.com/tdewolff/shapes2d/renderers/eps"
	"github.com/tdewolff/shapes2d/renderers/pdf"
	"github.com/tdewolff/shapes2d/renderers/rasterizer"
	"github.com/tdewolff/shapes2d/renderers/svg"
	"github.com/tdewolff/shapes2d/renderers/tex"
	"golang.org/x/image/tiff"
)

// Options are the options of all writers, set by passing them to Write.
type Options struct {
	Raster *rasterizer.Options
	JPG    *jpeg.Options
	GIF    *gif.Options
	TIFF   *tiff.Options
	SVG    *svg.Options
	PDF    *pdf.Options
}

// Write writes the batch to filename in the format given by its extension: png, jpg, gif, tif, webp, avif, svg, svgz, pdf, eps, tex, or pgf. Options for the encoders may be passed as pointers.
func Write(filename string, b *shapes2d.Batch, width, height float64, opts ...interface{}) error {
	options := Options{}
	for _, opt := range opts {
		switch o := opt.(type) {
		case *rasterizer.Options:
			options.Raster = o
		case *jpeg.Options:
			options.JPG = o
		case *gif.Options:
			options.GIF = o
		case *tiff.Options:
			options.TIFF = o
		case *svg.Options:
			options.SVG = o
		case *pdf.Options:
			options.PDF = o
		default:
			return fmt.Errorf("unknown option: %T(%v)", opt, opt)
		}
	}

	writer, err := writerFor(filename, options)
	if err != nil {
		return err
	}
	return b.WriteFile(filename, writer, width, height)
}

func writerFor(filename string, options Options) (shapes2d.Writer, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		return rasterizer.PNGWriter(options.Raster), nil
	case ".jpg", ".jpeg":
		return rasterizer.JPGWriter(options.Raster, options.JPG), nil
	case ".gif":
		return rasterizer.GIFWriter(options.Raster, options.GIF), nil
	case ".tif", ".tiff":
		return rasterizer.TIFFWriter(options.Raster, options.TIFF), nil
	case ".webp":
		return WebP(options.Raster), nil
	case ".avif":
		return AVIF(options.Raster), nil
	case ".svg", ".svgz":
		svgOpts := svg.DefaultOptions
		if options.SVG != nil {
			svgOpts = *options.SVG
		}
		if ext == ".svgz" && svgOpts.Compression == 0 {
			svgOpts.Compression = -1
		}
		return svg.Writer(&svgOpts), nil
	case ".pdf":
		return pdf.Writer(options.PDF), nil
	case ".eps":
		return eps.Writer, nil
	case ".tex", ".pgf":
		return tex.Writer, nil
	}
	return nil, fmt.Errorf("unknown file extension: %v", filepath.Ext(filename))
}

func errorWriter(err error) shapes2d.Writer {
	return func(_ io.Writer, _ *shapes2d.Batch, _, _ float64) error {
		return err
	}
}
