package handler

import (
	"cmp"
	"net/http"
	"slices"
	"time"

	"github.com/labstack/echo/v4"

	"erpauth/config"
	"erpauth/internal/delivery/http/response"
	"erpauth/internal/usecase"
	"erpauth/internal/util"
)

// SystemHandler serves the health check and the service index.
type SystemHandler struct {
	uc  usecase.HealthUsecase
	cfg *config.Config
}

// NewSystemHandler is the constructor for SystemHandler, injected by Fx.
func NewSystemHandler(uc usecase.HealthUsecase, cfg *config.Config) *SystemHandler {
	return &SystemHandler{uc: uc, cfg: cfg}
}

// Health handles GET /api/health. It answers 503 when the store does not respond.
func (h *SystemHandler) Health(c echo.Context) error {
	report := h.uc.Check(c.Request().Context())

	status := http.StatusOK
	message := h.cfg.Env.ServiceName + " is running"
	database := report.StoreDriver + " connected"
	if !report.Healthy {
		status = http.StatusServiceUnavailable
		message = "Store unavailable"
		database = report.StoreDriver + " unreachable"
	}

	resp := response.HealthResponse{
		Response:    response.OK(status, message),
		Timestamp:   report.CheckedAt,
		Environment: report.Environment,
		Database:    database,
		Version:     report.Version,
		Uptime:      util.FormatDuration(report.Uptime),
	}
	resp.Success = report.Healthy

	return c.JSON(status, resp)
}

// IndexResponse documents the service at GET /.
type IndexResponse struct {
	Message   string    `json:"message"`
	Version   string    `json:"version"`
	Status    string    `json:"status"`
	Endpoints []string  `json:"endpoints"`
	Timestamp time.Time `json:"timestamp"`
}

// Index handles GET /.
func (h *SystemHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, IndexResponse{
		Message:   h.cfg.Env.ServiceName + " authentication API",
		Version:   h.cfg.Env.Version,
		Status:    "running",
		Endpoints: RouteList(c.Echo()),
		Timestamp: time.Now().UTC(),
	})
}

// RouteList returns the registered routes as "METHOD /path", sorted by path.
func RouteList(e *echo.Echo) []string {
	routes := e.Routes()
	slices.SortFunc(routes, func(a, b *echo.Route) int {
		return cmp.Or(cmp.Compare(a.Path, b.Path), cmp.Compare(a.Method, b.Method))
	})

	list := make([]string, 0, len(routes))
	for _, route := range routes {
		if route.Method == echo.RouteNotFound {
			continue
		}
		list = append(list, route.Method+" "+route.Path)
	}

	return slices.Compact(list)
}
