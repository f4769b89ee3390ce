package export

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/jung-kurt/gofpdf"
)

// PDF writes a single-page PDF holding the exported bitmap. The page is the
// canvas size in points, so the bitmap prints at Scale times 72 dpi.
func PDF(w io.Writer, src Source, opts Options) error {
	var buf bytes.Buffer
	if err := PNG(&buf, src, opts); err != nil {
		return err
	}

	cw, ch := src.Size()
	p := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(cw), Ht: float64(ch)},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	const name = "sketch"
	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader(name, imgOpts, &buf)
	p.ImageOptions(name, 0, 0, float64(cw), float64(ch), false, imgOpts, 0, "")

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	log.Printf("[EXPORT] Wrote %dx%d pt PDF", cw, ch)
	return nil
}
