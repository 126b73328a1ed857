package webapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/events"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/iotaledger/migration-address/packages/ratelimiter"
)

// PluginName is the name of the web API plugin.
const PluginName = "WebAPI"

// ShutdownTimeout is the time the server waits for running requests on shutdown.
const ShutdownTimeout = 5 * time.Second

// Server is the web API server of the node. Endpoints register their routes on Echo.
type Server struct {
	params  *Parameters
	echo    *echo.Echo
	limiter *ratelimiter.ClientRateLimiter
	log     *zap.SugaredLogger

	rateLimitHits prometheus.Counter
}

// New creates the web API server.
func New(params *Parameters, logger *zap.SugaredLogger) (*Server, error) {
	s := &Server{
		params: params,
		echo:   echo.New(),
		log:    logger.Named(PluginName),
	}
	s.rateLimitHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "webapi_rate_limit_hits_total",
		Help: "Number of times a client exceeded the request limit.",
	})

	limiter, err := ratelimiter.NewClientRateLimiter(params.RateLimit.Interval, params.RateLimit.Limit, s.log)
	if err != nil {
		return nil, errors.Errorf("failed to create rate limiter: %w", err)
	}
	s.limiter = limiter
	s.limiter.HitEvent().Attach(events.NewClosure(func(client string, rateLimit *ratelimiter.RateLimit) {
		s.rateLimitHits.Inc()
		s.log.Warnw("Rejecting requests of client", "client", client, "rateLimit", rateLimit.String())
	}))

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Logger.SetLevel(log.OFF)
	s.echo.HTTPErrorHandler = s.handleError

	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		Skipper:      middleware.DefaultSkipper,
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost},
	}))
	s.echo.Use(middleware.Recover())

	if params.BasicAuth.Enabled {
		s.echo.Use(middleware.BasicAuth(func(username, password string, c echo.Context) (bool, error) {
			if username == params.BasicAuth.Username &&
				password == params.BasicAuth.Password {
				return true, nil
			}
			return false, nil
		}))
	}
	s.echo.Use(s.rateLimit)

	return s, nil
}

// Echo returns the echo instance the endpoints are registered on.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Collectors returns the prometheus collectors of the server.
func (s *Server) Collectors() []prometheus.Collector {
	return []prometheus.Collector{s.rateLimitHits}
}

// ServeHTTP serves a single request.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Run serves the web API until ctx is done or the server fails.
func (s *Server) Run(ctx context.Context) {
	defer s.log.Infof("Stopping %s ... done", PluginName)

	stopped := make(chan struct{})
	go func() {
		s.log.Infof("%s started, bind-address=%s, basic-auth=%v, rate-limit=%s", PluginName, s.params.BindAddress, s.params.BasicAuth.Enabled, s.limiter.Limit())
		if err := s.echo.Start(s.params.BindAddress); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				s.log.Errorf("Error serving: %s", err)
			}
			close(stopped)
		}
	}()

	// stop if we are shutting down or the server could not be started
	select {
	case <-ctx.Done():
	case <-stopped:
	}

	s.log.Infof("Stopping %s ...", PluginName)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		s.log.Errorf("Error stopping: %s", err)
	}
	s.limiter.Close()
}

func (s *Server) rateLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.limiter.Count(c.RealIP()) {
			return c.JSON(http.StatusTooManyRequests, NewErrorResponse(ErrRateLimitExceeded))
		}
		return next(c)
	}
}

func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := err.Error()

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	}
	if code >= http.StatusInternalServerError {
		s.log.Errorw("Request failed", "path", c.Request().URL.Path, "err", err)
	}

	if err := c.JSON(code, ErrorResponse{Error: message}); err != nil {
		s.log.Warnw("Failed to send error response", "err", err)
	}
}
