package recording

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/jasontodev/NoxusIoniaRL/common/utils"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
	"github.com/pkg/errors"
)

// SingleArenaRecorder keeps the record of one arena in memory and writes
// it as a zip archive (RecordMetadata + Record) on Close.
type SingleArenaRecorder struct {
	mu             sync.Mutex
	buffer         strings.Builder
	filename       string
	recordMetadata *RecordMetadata
}

func MakeSingleArenaRecorder(filename string) *SingleArenaRecorder {
	if !strings.HasSuffix(filename, ".zip") {
		filename += ".zip"
	}

	return &SingleArenaRecorder{
		filename: filename,
	}
}

func (r *SingleArenaRecorder) GetFilename() string {
	return r.filename
}

func (r *SingleArenaRecorder) Stop() {}

func (r *SingleArenaRecorder) Close(arenaID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recordMetadata == nil {
		return errors.Errorf("missing RecordMetadata for arena %s", arenaID)
	}

	metadata, err := json.Marshal(*r.recordMetadata)
	if err != nil {
		return errors.Wrap(err, "could not serialize RecordMetadata")
	}

	files := []ArchiveFile{
		{Name: "RecordMetadata", Body: string(metadata)},
		{Name: "Record", Body: r.buffer.String()},
	}

	if err := MakeArchive(r.filename, files); err != nil {
		return errors.Wrap(err, "could not create record archive")
	}

	utils.Debug("SingleArenaRecorder", "wrote record archive "+r.filename)

	return nil
}

func (r *SingleArenaRecorder) RecordMetadata(arenaID string, config *arena.Config) error {
	r.mu.Lock()
	r.recordMetadata = makeRecordMetadata(arenaID, config)
	r.mu.Unlock()

	utils.Debug("SingleArenaRecorder", "created RecordMetadata")

	return nil
}

func (r *SingleArenaRecorder) Record(arenaID string, msg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buffer.WriteString(msg)
	r.buffer.WriteByte('\n')

	return nil
}
