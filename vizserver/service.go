package vizserver

import (
	"context"
	"net"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jasontodev/NoxusIoniaRL/common/healthcheck"
	"github.com/jasontodev/NoxusIoniaRL/common/utils"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
	apphandler "github.com/jasontodev/NoxusIoniaRL/vizserver/handler"
	"github.com/jasontodev/NoxusIoniaRL/vizserver/types"
	"github.com/pkg/errors"
)

type VizService struct {
	addr   string
	arenas *types.VizArenaMap
	health *healthcheck.HealthCheck

	// WatcherBuffer is the number of frames queued per watcher before frames are dropped.
	WatcherBuffer int

	lock     sync.Mutex
	server   *http.Server
	listener net.Listener
}

func NewVizService(addr string, health *healthcheck.HealthCheck) *VizService {
	if health == nil {
		health = healthcheck.NewHealthCheck()
	}

	return &VizService{
		addr:          addr,
		arenas:        types.NewVizArenaMap(),
		health:        health,
		WatcherBuffer: types.DefaultWatcherBuffer,
	}
}

// AddArena registers an arena; the returned VizArena is the frame sink of its runner.
func (viz *VizService) AddArena(id string, name string, tps int, config arena.Config) *types.VizArena {
	vizarena := types.NewVizArena(id, name, tps, config)
	viz.arenas.Set(id, vizarena)

	return vizarena
}

func (viz *VizService) GetArena(id string) *types.VizArena {
	return viz.arenas.Get(id)
}

func (viz *VizService) Router() http.Handler {
	logger := os.Stdout
	router := mux.NewRouter()

	router.Handle("/", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Home(viz.arenas)),
	)).Methods("GET")

	router.Handle("/arena/{id:[a-zA-Z0-9\\-]+}", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Arena(viz.arenas)),
	)).Methods("GET")

	router.Handle("/arena/{id:[a-zA-Z0-9\\-]+}/ws", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Websocket(viz.arenas, viz.WatcherBuffer)),
	)).Methods("GET")

	router.Handle("/health", viz.health).Methods("GET")

	return router
}

// Start binds the listener and serves in the background.
func (viz *VizService) Start() error {
	viz.lock.Lock()
	defer viz.lock.Unlock()

	if viz.server != nil {
		return errors.New("VizService already started")
	}

	listener, err := net.Listen("tcp", viz.addr)
	if err != nil {
		return errors.Wrap(err, "VizService could not listen on "+viz.addr)
	}

	viz.listener = listener
	viz.server = &http.Server{Handler: viz.Router()}

	utils.Debug("vizserver", "VIZ Listening on "+listener.Addr().String())

	go func(server *http.Server) {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			utils.Warn("vizserver", err.Error())
		}
	}(viz.server)

	return nil
}

// Addr is the bound address once started.
func (viz *VizService) Addr() string {
	viz.lock.Lock()
	defer viz.lock.Unlock()

	if viz.listener == nil {
		return viz.addr
	}

	return viz.listener.Addr().String()
}

func (viz *VizService) Stop(ctx context.Context) error {
	viz.lock.Lock()
	server := viz.server
	viz.server = nil
	viz.listener = nil
	viz.lock.Unlock()

	if server == nil {
		return nil
	}

	// Hijacked websocket connections are not tracked by Shutdown.
	return server.Shutdown(ctx)
}
