package recording

import "github.com/jasontodev/NoxusIoniaRL/game/arena"

type EmptyRecorder struct{}

func MakeEmptyRecorder() EmptyRecorder {
	return EmptyRecorder{}
}

func (r EmptyRecorder) Record(arenaID string, msg string) error {
	return nil
}

func (r EmptyRecorder) RecordMetadata(arenaID string, config *arena.Config) error {
	return nil
}

func (r EmptyRecorder) Close(arenaID string) error { return nil }
func (r EmptyRecorder) Stop()                      {}
