package healthz

import (
	"net/http"

	"github.com/labstack/echo"
	"go.uber.org/atomic"
)

// Healthz reports whether the node is up.
type Healthz struct {
	healthy *atomic.Bool
}

// New creates an unhealthy Healthz endpoint.
func New() *Healthz {
	return &Healthz{healthy: atomic.NewBool(false)}
}

// Register adds the healthz route to server.
func (h *Healthz) Register(server *echo.Echo) {
	server.GET("/healthz", h.getHealthz)
}

// SetHealthy sets the state reported by the endpoint.
func (h *Healthz) SetHealthy(healthy bool) {
	h.healthy.Store(healthy)
}

func (h *Healthz) getHealthz(c echo.Context) error {
	if !h.healthy.Load() {
		return c.NoContent(http.StatusServiceUnavailable)
	}
	return c.NoContent(http.StatusOK)
}
