package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/jasontodev/NoxusIoniaRL/common/utils"
	"github.com/jasontodev/NoxusIoniaRL/vizserver/types"
)

const writeWait = time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func Websocket(arenas *types.VizArenaMap, buffer int) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		arena := arenas.Get(vars["id"])

		if arena == nil {
			http.Error(w, "ARENA NOT FOUND !", http.StatusNotFound)
			return
		}

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			utils.Warn("vizserver", "upgrade: "+err.Error())
			return
		}

		watcher := types.NewWatcher(c, buffer)
		arena.SetWatcher(watcher)

		defer func() {
			arena.RemoveWatcher(watcher.GetId())
			c.Close()
			utils.Debug("vizserver", "watcher "+watcher.GetId()+" left")
		}()

		// Listen to messages incoming from viz; mandatory to notice when websocket is closed client side
		clientclosedsocket := make(chan struct{})
		go func() {
			defer close(clientclosedsocket)
			for {
				if _, _, err := c.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-clientclosedsocket:
				return
			case frame := <-watcher.Frames():
				c.SetWriteDeadline(time.Now().Add(writeWait))
				if err := c.WriteMessage(websocket.TextMessage, frame); err != nil {
					return
				}
			}
		}
	}
}
