package comm

import "github.com/jasontodev/NoxusIoniaRL/game/arena"

type EventLog struct{ Value string }
type EventWarn struct{ Err error }

type EventConnConnected struct {
	Team    arena.Team
	Session string
}

type EventConnDisconnected struct {
	Team    arena.Team
	Session string
	Err     error
}
