package replay

import (
	"archive/zip"
	"bufio"
	"encoding/json"
	"io"

	"github.com/jasontodev/NoxusIoniaRL/common/recording"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
	"github.com/pkg/errors"
)

const maxLineSize = 1024 * 1024

// Replayer reads back an archive written by recording.SingleArenaRecorder.
type Replayer struct {
	filename string
	zip      *zip.ReadCloser
	metadata recording.RecordMetadata
	record   *zip.File
}

func NewReplayer(filename string) (*Replayer, error) {
	r, err := zip.OpenReader(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open record archive %s", filename)
	}

	replayer := &Replayer{
		filename: filename,
		zip:      r,
	}

	var metadata *zip.File
	for _, f := range r.File {
		switch f.Name {
		case "RecordMetadata":
			metadata = f
		case "Record":
			replayer.record = f
		}
	}

	if metadata == nil || replayer.record == nil {
		r.Close()
		return nil, errors.Errorf("%s is not a record archive", filename)
	}

	rc, err := metadata.Open()
	if err != nil {
		r.Close()
		return nil, errors.Wrap(err, "could not open RecordMetadata")
	}
	defer rc.Close()

	if err := json.NewDecoder(rc).Decode(&replayer.metadata); err != nil {
		r.Close()
		return nil, errors.Wrap(err, "could not decode RecordMetadata")
	}

	return replayer, nil
}

func (r *Replayer) GetFilename() string {
	return r.filename
}

func (r *Replayer) Metadata() recording.RecordMetadata {
	return r.metadata
}

// Read calls fn with every recorded event in order; it stops at the first error fn returns.
func (r *Replayer) Read(fn func(event arena.Event) error) error {
	rc, err := r.record.Open()
	if err != nil {
		return errors.Wrap(err, "could not open Record")
	}
	defer rc.Close()

	return readEvents(rc, fn)
}

func readEvents(rd io.Reader, fn func(event arena.Event) error) error {
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++

		data := scanner.Bytes()
		if len(data) == 0 {
			continue
		}

		var event arena.Event
		if err := json.Unmarshal(data, &event); err != nil {
			return errors.Wrapf(err, "malformed event on line %d", line)
		}

		if err := fn(event); err != nil {
			return err
		}
	}

	return errors.Wrap(scanner.Err(), "could not read Record")
}

func (r *Replayer) Close() error {
	return r.zip.Close()
}
