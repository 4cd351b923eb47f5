package recording

import (
	"time"

	"github.com/jasontodev/NoxusIoniaRL/game/arena"
)

type Recorder interface {
	Record(arenaID string, msg string) error
	RecordMetadata(arenaID string, config *arena.Config) error
	Close(arenaID string) error
	Stop()
}

type RecordMetadata struct {
	ArenaID string        `json:"arena_id"`
	Date    string        `json:"date"`
	Config  *arena.Config `json:"config"`
}

func makeRecordMetadata(arenaID string, config *arena.Config) *RecordMetadata {
	return &RecordMetadata{
		ArenaID: arenaID,
		Date:    time.Now().Format(time.RFC3339),
		Config:  config,
	}
}
