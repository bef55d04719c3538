package middleware

import (
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"
)

// LoggerWithWriter logs each HTTP request as one JSON line to w.
// A nil loc means UTC.
// Fields: ts, level, request_id, method, path, status, latency (ms) and
// trace_id when the request carries a sampled or remote span.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	if loc == nil {
		loc = time.UTC
	}
	var mu sync.Mutex
	enc := json.NewEncoder(w)

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := responseStatus(c, err)
		entry := map[string]any{
			"ts":         start.In(loc).Format(time.RFC3339Nano),
			"level":      levelFor(status),
			"request_id": RequestIDFromCtx(c),
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    float64(time.Since(start).Microseconds()) / 1000,
		}
		if sc := trace.SpanContextFromContext(c.UserContext()); sc.HasTraceID() {
			entry["trace_id"] = sc.TraceID().String()
		}

		mu.Lock()
		_ = enc.Encode(entry)
		mu.Unlock()

		return err
	}
}

func levelFor(status int) string {
	switch {
	case status >= fiber.StatusInternalServerError:
		return "error"
	case status >= fiber.StatusBadRequest:
		return "warn"
	default:
		return "info"
	}
}
