package recording

import (
	"encoding/json"

	"github.com/jasontodev/NoxusIoniaRL/common/utils"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
)

// RecorderSink records every arena event as one JSON line.
type RecorderSink struct {
	recorder Recorder
	arenaID  string
}

func NewRecorderSink(recorder Recorder, arenaID string) *RecorderSink {
	return &RecorderSink{
		recorder: recorder,
		arenaID:  arenaID,
	}
}

func (s *RecorderSink) Record(event arena.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		utils.Warn("recording", "could not serialize event "+string(event.Type)+": "+err.Error())
		return
	}

	if err := s.recorder.Record(s.arenaID, string(data)); err != nil {
		utils.Warn("recording", "could not record event: "+err.Error())
	}
}
