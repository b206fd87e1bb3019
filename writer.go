package shapes2d

import (
	"fmt"
	"io"
	"os"
)

// Writer writes a batch as an image or document of width by height pixels.
type Writer func(w io.Writer, b *Batch, width, height float64) error

// Write writes the batch to w using writer.
func (b *Batch) Write(w io.Writer, writer Writer, width, height float64) error {
	return writer(w, b, width, height)
}

// WriteFile writes the batch to a file named filename using writer.
func (b *Batch) WriteFile(filename string, writer Writer, width, height float64) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err = writer(f, b, width, height); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	Logger().Info("file written", "filename", filename, "width", width, "height", height)
	return nil
}
