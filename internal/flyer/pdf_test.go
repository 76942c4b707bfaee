package flyer

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func encodeTestImage(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestPackagePDF(t *testing.T) {
	data, err := PackagePDF(encodeTestImage(t, CanvasWidth, CanvasHeight))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("missing pdf header")
	}
	if !bytes.Contains(data, []byte("/Count 1")) {
		t.Error("pdf must hold exactly one page")
	}
	// The page box matches the canvas in points.
	if !bytes.Contains(data, []byte("/MediaBox [0 0 1080")) {
		t.Error("media box does not match the canvas size")
	}
}

func TestPackagePDFRejectsGarbage(t *testing.T) {
	if _, err := PackagePDF([]byte("not a png")); err == nil {
		t.Fatal("corrupt image data must fail packaging")
	}
}

func TestPackagePDFRejectsEmpty(t *testing.T) {
	if _, err := PackagePDF(nil); err == nil {
		t.Fatal("empty image data must fail packaging")
	}
}
