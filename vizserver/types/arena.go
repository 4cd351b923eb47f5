package types

import (
	"encoding/json"

	"github.com/jasontodev/NoxusIoniaRL/common/utils"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
)

const DefaultWatcherBuffer = 16

type VizArena struct {
	id     string
	name   string
	tps    int
	config arena.Config
	pool   *WatcherMap
}

func NewVizArena(id string, name string, tps int, config arena.Config) *VizArena {
	return &VizArena{
		id:     id,
		name:   name,
		tps:    tps,
		config: config,
		pool:   NewWatcherMap(),
	}
}

func (a *VizArena) GetId() string {
	return a.id
}

func (a *VizArena) GetName() string {
	return a.name
}

func (a *VizArena) GetTps() int {
	return a.tps
}

type VizInitMessageData struct {
	Tps    int          `json:"tps"`
	Config arena.Config `json:"config"`
}

type VizInitMessage struct {
	Type string             `json:"type"`
	Data VizInitMessageData `json:"data"`
}

// InitMessage is the first message sent to every watcher.
func (a *VizArena) InitMessage() []byte {
	data, err := json.Marshal(VizInitMessage{
		Type: "init",
		Data: VizInitMessageData{
			Tps:    a.tps,
			Config: a.config,
		},
	})
	utils.Check(err, "Could not serialize VizInitMessage")

	return data
}

// SetWatcher queues init before the watcher can receive any frame.
func (a *VizArena) SetWatcher(watcher *Watcher) {
	watcher.Send(a.InitMessage())
	a.pool.Set(watcher.GetId(), watcher)
}

func (a *VizArena) RemoveWatcher(watcherid string) {
	a.pool.Remove(watcherid)
}

func (a *VizArena) GetNumberWatchers() int {
	return a.pool.Size()
}

// Broadcast hands frame to every watcher without waiting for any of them.
func (a *VizArena) Broadcast(frame []byte) {
	for _, watcher := range a.pool.ToArray() {
		watcher.Send(frame)
	}
}
