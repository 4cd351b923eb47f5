package replay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jasontodev/NoxusIoniaRL/common/recording"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayRecordedArchive(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "episodes")
	config := arena.DefaultConfig()

	recorder := recording.MakeSingleArenaRecorder(filename)
	require.NoError(t, recorder.RecordMetadata("1", &config))

	sink := recording.NewRecorderSink(recorder, "1")
	sink.Record(arena.Event{Type: arena.EventEpisodeStart, Episode: 1})
	sink.Record(arena.Event{Type: arena.EventDeath, Episode: 1, Tick: 40, Agent: "Ionia_0", Killer: "Noxus_1"})
	sink.Record(arena.Event{Type: arena.EventEpisodeEnd, Episode: 1, Tick: 41, Winner: "Noxus", Reason: arena.ReasonElimination})
	require.NoError(t, recorder.Close("1"))

	replayer, err := NewReplayer(recorder.GetFilename())
	require.NoError(t, err)
	defer replayer.Close()

	assert.Equal(t, "1", replayer.Metadata().ArenaID)
	require.NotNil(t, replayer.Metadata().Config)
	assert.Equal(t, config.AgentsPerTeam, replayer.Metadata().Config.AgentsPerTeam)

	events := make([]arena.Event, 0)
	require.NoError(t, replayer.Read(func(event arena.Event) error {
		events = append(events, event)
		return nil
	}))

	require.Len(t, events, 3)
	assert.Equal(t, arena.EventDeath, events[1].Type)
	assert.Equal(t, "Noxus_1", events[1].Killer)
	assert.Equal(t, arena.ReasonElimination, events[2].Reason)
}

func TestReplayRejectsForeignFiles(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "notazip")
	require.NoError(t, os.WriteFile(filename, []byte("hello"), 0644))

	_, err := NewReplayer(filename)
	assert.Error(t, err)
}

func TestReadEventsReportsMalformedLine(t *testing.T) {
	err := readEvents(strings.NewReader("{\"event_type\":\"attack\"}\n\nnope\n"), func(arena.Event) error { return nil })

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}
