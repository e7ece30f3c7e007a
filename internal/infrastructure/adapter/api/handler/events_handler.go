package handler

import (
	"io"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/notification"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/middleware"
)

// EventsHandler streams the caller's channel as server-sent events
type EventsHandler struct {
	subscriber notification.Subscriber
	keepAlive  time.Duration
	logger     coreport.Logger
	done       chan struct{}
	closeOnce  sync.Once
}

// NewEventsHandler creates the stream handler; keepAlive defaults to 25s
func NewEventsHandler(subscriber notification.Subscriber, keepAlive time.Duration, logger coreport.Logger) *EventsHandler {
	if keepAlive <= 0 {
		keepAlive = 25 * time.Second
	}
	return &EventsHandler{
		subscriber: subscriber,
		keepAlive:  keepAlive,
		logger:     logger,
		done:       make(chan struct{}),
	}
}

// Stream handles GET /api/events
func (h *EventsHandler) Stream(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)

	messages, err := h.subscriber.Subscribe(ctx, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	h.logger.Debug("Event stream opened", map[string]any{"user_id": userID})
	c.SSEvent("ready", gin.H{"channel": notification.UserChannel(userID)})
	c.Writer.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case <-h.done:
			return false
		case msg, ok := <-messages:
			if !ok {
				return false
			}
			c.SSEvent(msg.Event, string(msg.Data))
			return true
		case <-ticker.C:
			_, _ = io.WriteString(w, ": ping\n\n")
			return true
		}
	})

	h.logger.Debug("Event stream closed", map[string]any{"user_id": userID})
}

// Close ends every open stream. http.Server.Shutdown does not cancel request contexts.
func (h *EventsHandler) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}
