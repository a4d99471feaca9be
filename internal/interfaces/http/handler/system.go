package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/infrastructure/persistence"
	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/interfaces/http/dto"
)

// SystemHandler handles health and system information endpoints
type SystemHandler struct {
	BaseHandler
	db        *persistence.Database
	appName   string
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler. db may be nil when no
// database health check is wanted.
func NewSystemHandler(db *persistence.Database, appName string) *SystemHandler {
	return &SystemHandler{
		db:        db,
		appName:   appName,
		startTime: time.Now(),
	}
}

// RegisterRoutes registers system routes on the given group
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/system/info", h.GetSystemInfo)
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// Health reports service liveness plus database reachability
func (h *SystemHandler) Health(c *gin.Context) {
	resp := HealthResponse{Status: "ok"}

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			resp.Status = "degraded"
			resp.Database = "unreachable"
			c.JSON(http.StatusServiceUnavailable, dto.NewSuccessResponse(resp))
			return
		}
		resp.Database = "ok"
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string `json:"name"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// GetSystemInfo returns basic service information
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	info := SystemInfoResponse{
		Name:      h.appName,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(info))
}
