package tracking

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// SkipPrefixes are request paths that never count as page views.
var SkipPrefixes = []string{
	"/assets/",
	"/images/",
	"/fonts/",
	"/static/",
	"/favicon",
	"/healthz",
	"/api/",
	"/hero/",
}

const recordTimeout = 5 * time.Second

// Tracker records page views to a Recorder in the background.
type Tracker struct {
	rec    Recorder
	logger *slog.Logger
	wg     sync.WaitGroup
}

func NewTracker(rec Recorder) *Tracker {
	return &Tracker{rec: rec, logger: slog.With(slog.String("component", "tracking"))}
}

// Middleware records GET page views. Requests with DNT: 1, HTMX fragment
// requests, error responses and paths under SkipPrefixes are not recorded.
func (t *Tracker) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method != "GET" || c.GetHeader("DNT") == "1" || c.GetHeader("HX-Request") == "true" {
			return
		}
		path := c.Request.URL.Path
		for _, p := range SkipPrefixes {
			if strings.HasPrefix(path, p) {
				return
			}
		}
		if c.Writer.Status() >= 400 {
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		t.wg.Add(1)
		go func() {
			defer t.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
			defer cancel()
			if err := t.rec.Record(ctx, ip, ua, path); err != nil {
				t.logger.Error("error recording visit", slog.Any("err", err))
			}
		}()
	}
}

// Wait blocks until every pending record has finished. Call it after the
// server has stopped accepting requests and before closing the store.
func (t *Tracker) Wait() {
	t.wg.Wait()
}
