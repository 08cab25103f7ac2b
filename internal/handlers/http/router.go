package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gabapcia/txtracker/internal/eventbus"
	"github.com/gabapcia/txtracker/internal/nodepool"
	"github.com/gabapcia/txtracker/internal/pkg/logger"
	"github.com/gabapcia/txtracker/internal/pkg/validator"
	"github.com/gabapcia/txtracker/internal/scanner"
	"github.com/gabapcia/txtracker/internal/webhook"
	"github.com/gabapcia/txtracker/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func newRouter(deps Dependencies, registry *prometheus.Registry) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(newHTTPMetrics(registry).middleware())

	h := &handlers{deps: deps, now: time.Now}

	r.GET("/ws", gin.WrapH(deps.WebSocket))
	r.GET("/health", h.health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	api := r.Group("/api")
	{
		api.GET("/stats", h.stats)

		ws := api.Group("/websocket")
		ws.GET("/connections", h.connections)
		ws.DELETE("/connections/:id", h.disconnect)
		ws.POST("/notify", h.notify)

		hooks := api.Group("/webhooks")
		hooks.GET("/queue", h.webhookQueue)
		hooks.DELETE("/queue", h.clearWebhookQueue)
		hooks.POST("/test", h.testWebhook)
	}

	return r
}

type handlers struct {
	deps Dependencies
	now  func() time.Time
}

type healthResponse struct {
	Status    string    `json:"status"`
	Scanner   bool      `json:"scanner"`
	Timestamp time.Time `json:"timestamp"`
}

// health is 200 while the last scan tick succeeded, 503 otherwise.
func (h *handlers) health(c *gin.Context) {
	resp := healthResponse{Status: "healthy", Scanner: true, Timestamp: h.now().UTC()}

	status := http.StatusOK
	if !h.deps.Scanner.HealthCheck() {
		resp.Status = "degraded"
		resp.Scanner = false
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, resp)
}

type statsResponse struct {
	Scanner     scanner.Statistics         `json:"scanner"`
	Nodes       []nodepool.NodeHealth      `json:"nodes"`
	Webhook     webhook.QueueStatus        `json:"webhook"`
	WebSocket   websocket.Stats            `json:"websocket"`
	Subscribers []eventbus.SubscriberStats `json:"subscribers"`
}

func (h *handlers) stats(c *gin.Context) {
	success(c, http.StatusOK, statsResponse{
		Scanner:     h.deps.Scanner.Statistics(),
		Nodes:       h.deps.Scanner.NodeHealth(),
		Webhook:     h.deps.Webhooks.QueueStatus(),
		WebSocket:   h.deps.WebSocket.Stats(),
		Subscribers: h.deps.Distributor.Stats(),
	})
}

func (h *handlers) connections(c *gin.Context) {
	success(c, http.StatusOK, h.deps.WebSocket.Connections())
}

func (h *handlers) disconnect(c *gin.Context) {
	id := c.Param("id")
	if err := h.deps.WebSocket.Disconnect(id); err != nil {
		if errors.Is(err, websocket.ErrConnectionNotFound) {
			fail(c, http.StatusNotFound, err)
			return
		}
		fail(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type notifyRequest struct {
	Message string `json:"message" validate:"required"`
	Level   string `json:"level" validate:"omitempty,oneof=info warning error"`
}

func (h *handlers) notify(c *gin.Context) {
	var req notifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if err := validator.Validate(req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if req.Level == "" {
		req.Level = "info"
	}

	h.deps.WebSocket.SendSystemNotification(req.Message, req.Level)
	c.Status(http.StatusAccepted)
}

func (h *handlers) webhookQueue(c *gin.Context) {
	success(c, http.StatusOK, h.deps.Webhooks.QueueStatus())
}

type clearQueueResponse struct {
	Cleared int `json:"cleared"`
}

func (h *handlers) clearWebhookQueue(c *gin.Context) {
	success(c, http.StatusOK, clearQueueResponse{Cleared: h.deps.Webhooks.ClearQueue()})
}

type testWebhookRequest struct {
	URL     string          `json:"url" validate:"required,http_url"`
	Secret  string          `json:"secret"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// testWebhook sends one synchronous delivery of payload, or of the default
// test payload when none is given. A failed delivery is still a successful
// API call; the outcome is in the result.
func (h *handlers) testWebhook(c *gin.Context) {
	var req testWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if err := validator.Validate(req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	result, err := h.deps.Webhooks.Test(c.Request.Context(), req.URL, req.Secret, req.Payload)
	if err != nil {
		if errors.Is(err, validator.ErrValidationFailed) {
			fail(c, http.StatusBadRequest, err)
			return
		}

		logger.Error(c.Request.Context(), "webhook test failed", "webhook.url", req.URL, "error", err)
		fail(c, http.StatusInternalServerError, err)
		return
	}

	success(c, http.StatusOK, result)
}
