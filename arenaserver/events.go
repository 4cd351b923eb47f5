package arenaserver

import "github.com/jasontodev/NoxusIoniaRL/game/arena"

type EventLog struct{ Value string }
type EventWarn struct{ Err error }

type EventEpisodeEnd struct {
	Episode   int
	EpisodeID string
	Outcome   arena.Outcome
	Ticks     int
	Returns   map[arena.AgentKey]float64
}
