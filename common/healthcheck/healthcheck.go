package healthcheck

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/jasontodev/NoxusIoniaRL/common/utils"
)

// HealthCheckHandler reports an error when the checked component is unhealthy.
type HealthCheckHandler func() error

type HealthChecks struct {
	Name   string `json:"name"`
	Status bool   `json:"status"`
	Error  string `json:"error,omitempty"`
}

type HealthCheckHttpResponse struct {
	Checks     []HealthChecks `json:"checks"`
	StatusCode int            `json:"statusCode"`
}

type checker struct {
	name    string
	handler HealthCheckHandler
}

type HealthCheck struct {
	lock     sync.RWMutex
	checkers []checker
}

func NewHealthCheck() *HealthCheck {
	return &HealthCheck{}
}

func (hc *HealthCheck) Register(name string, handler HealthCheckHandler) {
	hc.lock.Lock()
	hc.checkers = append(hc.checkers, checker{name: name, handler: handler})
	hc.lock.Unlock()
}

// Run evaluates every check in registration order.
func (hc *HealthCheck) Run() HealthCheckHttpResponse {
	hc.lock.RLock()
	checkers := make([]checker, len(hc.checkers))
	copy(checkers, hc.checkers)
	hc.lock.RUnlock()

	res := HealthCheckHttpResponse{
		Checks:     make([]HealthChecks, 0, len(checkers)),
		StatusCode: http.StatusOK,
	}

	for _, c := range checkers {
		check := HealthChecks{Name: c.name, Status: true}

		if err := c.handler(); err != nil {
			check.Status = false
			check.Error = err.Error()
			res.StatusCode = http.StatusInternalServerError
		}

		res.Checks = append(res.Checks, check)
	}

	return res
}

func (hc *HealthCheck) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := hc.Run()

	data, err := json.Marshal(res)
	utils.Check(err, "Failed to marshal response")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	w.Write(data)
}
