// Package utils provides file loading helpers shared by the command
// line tools.
package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// LoadFile reads the given ROM image, transparently decompressing gzip,
// zip and 7z archives. Container formats yield their first file member.
// Files with any other extension are returned as is.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	switch filepath.Ext(filename) {
	case ".gz":
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		return io.ReadAll(r)

	case ".zip":
		r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("opening zip archive: %w", err)
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("%s: archive has no members", filename)
		}
		return readMember(r.File[0].Open)

	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("opening 7z archive: %w", err)
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("%s: archive has no members", filename)
		}
		return readMember(r.File[0].Open)

	default:
		return data, nil
	}
}

func readMember(open func() (io.ReadCloser, error)) ([]byte, error) {
	member, err := open()
	if err != nil {
		return nil, err
	}
	defer member.Close()

	return io.ReadAll(member)
}
