// Package vsix writes the final distributable archive. The archive is
// buffered through a temporary file and renamed into place only after the
// zip stream is closed cleanly, so a failed build never leaves a partial
// archive behind.
package vsix

import (
	"archive/zip"
	"os"
	"path/filepath"
	"time"

	vsixerrors "github.com/themetools/vsixpack/pkg/errors"
)

// Extension is the suffix appended to the requested output name.
const Extension = ".vsix"

// entryModTime pins every archive entry to a fixed timestamp so identical
// inputs produce byte-identical archives.
var entryModTime = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// File is one payload entry destined for the archive root.
type File struct {
	Name string
	Data []byte
}

// Write creates the archive at path, replacing any existing file there.
// It returns the archive size in bytes.
func Write(path string, files []File) (int64, error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-")
	if err != nil {
		return 0, vsixerrors.NewWriteError(path, err)
	}

	size, err := writeArchive(tmp, files)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return 0, vsixerrors.NewWriteError(path, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return 0, vsixerrors.NewWriteError(path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return 0, vsixerrors.NewWriteError(path, err)
	}

	return size, nil
}

func writeArchive(out *os.File, files []File) (int64, error) {
	zw := zip.NewWriter(out)

	for _, file := range files {
		header := &zip.FileHeader{
			Name:     file.Name,
			Method:   zip.Deflate,
			Modified: entryModTime,
		}
		w, err := zw.CreateHeader(header)
		if err != nil {
			return 0, err
		}
		if _, err := w.Write(file.Data); err != nil {
			return 0, err
		}
	}

	if err := zw.Close(); err != nil {
		return 0, err
	}

	info, err := out.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
