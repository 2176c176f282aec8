package fontload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/tracing"
)

// ErrFileOpen is the kind of errors returned for fonts which cannot be read
// from the file system. The error returned by LoadFontFile wraps both
// ErrFileOpen and the error of package os.
var ErrFileOpen = errors.New("cannot open font file")

// FontFile is the complete byte image of a font file.
type FontFile struct {
	Fontname string // file name without directory
	Path     string
	Binary   []byte
}

// LoadFontFile reads a font file (TTF or OTF) into memory.
// The file is read to completion and closed before LoadFontFile returns.
func LoadFontFile(path string) (*FontFile, error) {
	bytez, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrFileOpen, path, err)
	}
	tracing.Select("fontmeta").Debugf("loaded %d bytes from %s", len(bytez), path)
	return &FontFile{
		Fontname: filepath.Base(path),
		Path:     path,
		Binary:   bytez,
	}, nil
}
