package arenaserver

import (
	"strconv"

	"github.com/jasontodev/NoxusIoniaRL/common/utils"
)

// monitoring reports the tick throughput at every metrics interval. It
// runs on the metrics client loop and never touches the game.
func (s *Server) monitoring() {
	if s.options.Metrics == nil {
		return
	}

	s.options.Metrics.Loop(func() {
		ticks := s.ticks.GetAndReset()

		err := s.options.Metrics.WriteAppMetric("ticks", map[string]string{
			"arena": s.options.ArenaID,
		}, map[string]interface{}{
			"ticks": ticks,
		})

		if err != nil {
			utils.Warn("monitoring", "could not report ticks: "+err.Error())
			return
		}

		utils.Debug("monitoring", "-- MONITORING -- "+strconv.Itoa(ticks)+" ticks for arena "+s.options.ArenaID)
	})
}
