package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ordering/internal/adapters/views"
	"ordering/internal/core/ports"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeepAliveInterval is how often an idle event stream receives a comment line.
const KeepAliveInterval = 15 * time.Second

// EventSubscriber registers admin observers for order events.
type EventSubscriber interface {
	Subscribe(observerID string) <-chan ports.OrderEvent
	Unsubscribe(observerID string)
}

// StreamAdminEvents handles GET /api/admin/events. The connection is an
// observer for as long as it stays open.
//
//	@Summary	Stream order events
//	@Tags		admin
//	@Produce	text/event-stream
//	@Success	200
//	@Router		/api/admin/events [get]
func (s *Server) StreamAdminEvents(ctx echo.Context) error {
	observerID := uuid.NewString()
	events := s.observers.Subscribe(observerID)
	defer s.observers.Unsubscribe(observerID)

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)

	if _, err := fmt.Fprintf(res, "event: connected\ndata: {\"observerId\":%q}\n\n", observerID); err != nil {
		return nil
	}
	res.Flush()

	keepAlive := time.NewTicker(KeepAliveInterval)
	defer keepAlive.Stop()

	reqCtx := ctx.Request().Context()
	for {
		select {
		case <-reqCtx.Done():
			return nil
		case <-keepAlive.C:
			if _, err := fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case event := <-events:
			data, err := json.Marshal(views.NewEvent(event))
			if err != nil {
				s.logger.ErrorContext(reqCtx, "Failed to encode order event", "observer_id", observerID, "error", err)
				continue
			}
			if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event.Kind, data); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
