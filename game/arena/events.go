package arena

type EventType string

const (
	EventEpisodeStart EventType = "episode_start"
	EventAttack       EventType = "attack"
	EventDeath        EventType = "death"
	EventPickup       EventType = "pickup"
	EventDeposit      EventType = "deposit"
	EventSignal       EventType = "signal"
	EventEpisodeEnd   EventType = "episode_end"
)

// Event is a structured record of a notable transition.
type Event struct {
	Type     EventType      `json:"event_type"`
	Tick     int            `json:"tick"`
	Episode  int            `json:"episode"`
	Time     float64        `json:"time"`
	Agent    string         `json:"agent_id,omitempty"`
	Target   string         `json:"target_id,omitempty"`
	Killer   string         `json:"killer_id,omitempty"`
	Damage   int            `json:"damage,omitempty"`
	Amount   int            `json:"amount,omitempty"`
	Intent   *int           `json:"intent,omitempty"` // set on signal records only, zero included
	Winner   string         `json:"winner,omitempty"`
	Reason   EndReason      `json:"reason,omitempty"`
	Duration float64        `json:"duration,omitempty"`
	Banked   map[string]int `json:"banked,omitempty"`
}

type EventSink interface {
	Record(event Event)
}

type EventSinkFunc func(event Event)

func (f EventSinkFunc) Record(event Event) {
	f(event)
}

type discardSink struct{}

func (discardSink) Record(Event) {}

// GameLog keeps every event in memory.
type GameLog struct {
	entries []Event
}

func NewGameLog() *GameLog {
	return &GameLog{
		entries: make([]Event, 0),
	}
}

func (l *GameLog) Record(event Event) {
	l.entries = append(l.entries, event)
}

func (l *GameLog) Entries() []Event {
	return l.entries
}

func (l *GameLog) OfType(eventType EventType) []Event {
	res := make([]Event, 0)
	for _, entry := range l.entries {
		if entry.Type == eventType {
			res = append(res, entry)
		}
	}

	return res
}

func (l *GameLog) Clear() {
	l.entries = l.entries[:0]
}
