package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
)

// ErrEmptyArchive is returned when an archive holds no files.
var ErrEmptyArchive = errors.New("utils: archive is empty")

// LoadFile loads the given file and performs decompression if necessary.
// The compression is chosen by extension: .gz, .zip and .7z are
// decompressed, and for archives the first file is returned. Anything
// else is returned as is.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Decompress(filepath.Ext(filename), data)
}

// Decompress decompresses data according to the file extension ext.
func Decompress(ext string, data []byte) ([]byte, error) {
	var decoder io.ReadCloser
	var err error
	switch strings.ToLower(ext) {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
	case ".zip":
		var r *zip.Reader
		if r, err = zip.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
			break
		}
		if len(r.File) == 0 {
			return nil, ErrEmptyArchive
		}
		decoder, err = r.File[0].Open()
	case ".7z":
		var r *sevenzip.Reader
		if r, err = sevenzip.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
			break
		}
		if len(r.File) == 0 {
			return nil, ErrEmptyArchive
		}
		decoder, err = r.File[0].Open()
	default:
		// return the data as is
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("utils: opening %s: %w", ext, err)
	}
	defer decoder.Close()

	// read the decompressed data into a byte slice
	return io.ReadAll(decoder)
}
