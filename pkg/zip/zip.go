// Package zip bundles a flyer's artifacts into one downloadable archive.
package zip

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
)

// Artifact is one named file inside the bundle.
type Artifact struct {
	Name string
	Data []byte
}

// Archive packs the artifacts into a zip in the given order. Entries with an
// empty name or no data are rejected rather than silently dropped.
func Archive(artifacts []Artifact) ([]byte, error) {
	if len(artifacts) == 0 {
		return nil, errors.New("zip: nothing to archive")
	}

	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, a := range artifacts {
		if a.Name == "" || len(a.Data) == 0 {
			return nil, fmt.Errorf("zip: incomplete artifact %q", a.Name)
		}
		w, err := zw.Create(a.Name)
		if err != nil {
			return nil, fmt.Errorf("zip: create %s: %w", a.Name, err)
		}
		if _, err := w.Write(a.Data); err != nil {
			return nil, fmt.Errorf("zip: write %s: %w", a.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip: finalize: %w", err)
	}
	return buf.Bytes(), nil
}
