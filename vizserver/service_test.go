package vizserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jasontodev/NoxusIoniaRL/common/healthcheck"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
	"github.com/jasontodev/NoxusIoniaRL/vizserver/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startViz(t *testing.T, health *healthcheck.HealthCheck) *VizService {
	viz := NewVizService("127.0.0.1:0", health)
	viz.AddArena("1", "Summoner's Rift", 20, arena.DefaultConfig())
	require.NoError(t, viz.Start())

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		viz.Stop(ctx)
	})

	return viz
}

func get(t *testing.T, url string) (int, string) {
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res.StatusCode, string(body)
}

func TestHomeListsArenas(t *testing.T) {
	viz := startViz(t, nil)

	code, body := get(t, "http://"+viz.Addr()+"/")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "/arena/1")
	assert.Contains(t, body, "Summoner&#39;s Rift")

	code, body = get(t, "http://"+viz.Addr()+"/arena/1")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "/arena/1/ws")

	code, _ = get(t, "http://"+viz.Addr()+"/arena/2")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestWebsocketReceivesInitAndFrames(t *testing.T) {
	viz := startViz(t, nil)
	vizarena := viz.GetArena("1")

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+viz.Addr()+"/arena/1/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var init types.VizInitMessage
	require.NoError(t, json.Unmarshal(msg, &init))
	assert.Equal(t, "init", init.Type)
	assert.Equal(t, 20, init.Data.Tps)
	assert.Equal(t, arena.DefaultConfig().AgentsPerTeam, init.Data.Config.AgentsPerTeam)

	require.Eventually(t, func() bool { return vizarena.GetNumberWatchers() == 1 }, time.Second, 10*time.Millisecond)

	vizarena.Broadcast([]byte(`{"type":"frame","data":{"tick":1}}`))

	_, msg, err = conn.ReadMessage()
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(msg), `"tick":1`))

	conn.Close()
	assert.Eventually(t, func() bool { return vizarena.GetNumberWatchers() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHealthRoute(t *testing.T) {
	health := healthcheck.NewHealthCheck()
	var stopped atomic.Bool
	health.Register("runner", func() error {
		if !stopped.Load() {
			return nil
		}
		return errors.New("stopped")
	})

	viz := startViz(t, health)

	code, _ := get(t, "http://"+viz.Addr()+"/health")
	assert.Equal(t, http.StatusOK, code)

	stopped.Store(true)
	code, body := get(t, "http://"+viz.Addr()+"/health")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Contains(t, body, "stopped")
}

func TestStartTwice(t *testing.T) {
	viz := startViz(t, nil)
	assert.Error(t, viz.Start())
}

func TestWatcherDropsWhenFull(t *testing.T) {
	watcher := types.NewWatcher(nil, 1)

	assert.True(t, watcher.Send([]byte("a")))
	assert.False(t, watcher.Send([]byte("b")))
	assert.Equal(t, 1, watcher.GetDropped())
	assert.Equal(t, []byte("a"), <-watcher.Frames())
}
