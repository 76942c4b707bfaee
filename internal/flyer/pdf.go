package flyer

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PackagePDF wraps a rendered PNG into a single-page PDF whose page size
// matches the bitmap exactly, with the image placed full-bleed at the origin.
// The PDF is an image wrapper for print and sharing; nothing is re-drawn as
// vectors.
func PackagePDF(pngData []byte) ([]byte, error) {
	if len(pngData) == 0 {
		return nil, fmt.Errorf("package pdf: empty png input")
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: CanvasWidth, Ht: CanvasHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("flyer", opts, bytes.NewReader(pngData))
	pdf.ImageOptions("flyer", 0, 0, CanvasWidth, CanvasHeight, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("package pdf: %w", err)
	}
	return buf.Bytes(), nil
}
