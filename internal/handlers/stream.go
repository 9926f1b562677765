package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/sse"
)

type StreamHandler struct {
	log *logger.Logger
	hub *sse.Hub
}

func NewStreamHandler(log *logger.Logger, hub *sse.Hub) *StreamHandler {
	return &StreamHandler{
		log: log.With("handler", "StreamHandler"),
		hub: hub,
	}
}

// Stream opens an SSE connection subscribed to the comma-separated channels
// query (study keys, verse keys or date keys). The connection lives until the
// client goes away.
func (h *StreamHandler) Stream(c *gin.Context) {
	client := h.hub.NewClient()
	for _, ch := range strings.Split(c.Query("channels"), ",") {
		h.hub.AddChannel(client, ch)
	}
	defer h.hub.CloseClient(client)
	h.hub.ServeHTTP(c.Writer, c.Request, client)
}
