package recording

import (
	"archive/zip"
	"io"
	"os"

	"github.com/pkg/errors"
)

type ArchiveFile struct {
	Name string
	Body string
}

// MakeArchive writes files into a new zip archive at filename.
func MakeArchive(filename string, files []ArchiveFile) error {
	out, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "could not create archive %s", filename)
	}

	if err := writeArchive(out, files); err != nil {
		out.Close()
		return err
	}

	return errors.Wrapf(out.Close(), "could not close archive %s", filename)
}

func writeArchive(out io.Writer, files []ArchiveFile) error {
	w := zip.NewWriter(out)

	for _, file := range files {
		f, err := w.Create(file.Name)
		if err != nil {
			return errors.Wrapf(err, "could not add %s to archive", file.Name)
		}

		if _, err := f.Write([]byte(file.Body)); err != nil {
			return errors.Wrapf(err, "could not write %s to archive", file.Name)
		}
	}

	return errors.Wrap(w.Close(), "could not finalize archive")
}
