package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"fair-api/internal/realtime"
	"fair-api/internal/response"
	"fair-api/internal/service"
)

type CrowdStatusHandler struct {
	crowdService service.CrowdStatusService
	hub          *realtime.Hub
	upgrader     websocket.Upgrader
	logger       *zap.Logger
}

// NewCrowdStatusHandler serves the crowd-status snapshot and its WebSocket feed.
// WebSocket origins are checked against the CORS allow-list.
func NewCrowdStatusHandler(crowdService service.CrowdStatusService, hub *realtime.Hub, allowedOrigins []string, logger *zap.Logger) *CrowdStatusHandler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	_, allowAll := allowed["*"]

	return &CrowdStatusHandler{
		crowdService: crowdService,
		hub:          hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || allowAll {
					return true
				}
				_, ok := allowed[origin]
				return ok
			},
		},
		logger: logger,
	}
}

// GetCrowdStatus godoc
// @Summary      Current crowd level of every active booth
// @Tags         crowd-status
// @Produce      json
// @Success      200 {object} response.Envelope{data=dto.CrowdStatusBroadcast}
// @Failure      500 {object} response.Envelope
// @Router       /crowd-status [get]
func (h *CrowdStatusHandler) GetCrowdStatus(c *gin.Context) {
	status, err := h.crowdService.ComputeCurrentStatus(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, status)
}

// Subscribe godoc
// @Summary      Crowd-status WebSocket feed
// @Description  Pushes {"destination":"/topic/crowd-status","body":CrowdStatusBroadcast} on every broadcaster tick
// @Tags         crowd-status
// @Success      101 {string} string "Switching Protocols"
// @Router       /ws/crowd-status [get]
func (h *CrowdStatusHandler) Subscribe(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("Failed to upgrade WebSocket connection", zap.Error(err))
		return
	}
	h.hub.Serve(conn)
}
