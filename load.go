package xmldom

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/jacoelho/xmldom/dom"
	"github.com/jacoelho/xmldom/errors"
)

// ParseFile parses the XML document at path. Files with a ".gz"
// extension are decompressed transparently.
func ParseFile(path string, opts ...Option) (*dom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIOError("open", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.NewIOError("gunzip", err)
		}
		defer zr.Close()
		return Parse(zr, opts...)
	}
	return Parse(f, opts...)
}
