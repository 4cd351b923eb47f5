package types

import (
	"sync"

	"github.com/gorilla/websocket"
	uuid "github.com/satori/go.uuid"
)

// Watcher is one websocket client. Frames are queued in a bounded buffer;
// when it is full the frame is dropped for this watcher only.
type Watcher struct {
	id     string
	conn   *websocket.Conn
	frames chan []byte

	dropped   int
	droppedMu sync.Mutex
}

func NewWatcher(conn *websocket.Conn, buffer int) *Watcher {
	return &Watcher{
		id:     uuid.NewV4().String(),
		conn:   conn,
		frames: make(chan []byte, buffer),
	}
}

func (w *Watcher) GetId() string {
	return w.id
}

func (w *Watcher) GetConn() *websocket.Conn {
	return w.conn
}

func (w *Watcher) Frames() <-chan []byte {
	return w.frames
}

// Send never blocks.
func (w *Watcher) Send(frame []byte) bool {
	select {
	case w.frames <- frame:
		return true
	default:
		w.droppedMu.Lock()
		w.dropped++
		w.droppedMu.Unlock()
		return false
	}
}

func (w *Watcher) GetDropped() int {
	w.droppedMu.Lock()
	defer w.droppedMu.Unlock()

	return w.dropped
}
