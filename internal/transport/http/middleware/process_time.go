package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// ProcessTime reports request handling duration in an X-Process-Time header.
// The header has to be injected when the status line is written, hence the
// writer wrapper.
func ProcessTime() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer = &processTimeWriter{ResponseWriter: c.Writer, start: time.Now()}
		c.Next()
	}
}

type processTimeWriter struct {
	gin.ResponseWriter
	start   time.Time
	stamped bool
}

func (w *processTimeWriter) WriteHeader(code int) {
	if !w.stamped {
		elapsed := time.Since(w.start).Seconds()
		w.Header().Set("X-Process-Time", strconv.FormatFloat(elapsed, 'f', 6, 64))
		w.stamped = true
	}
	w.ResponseWriter.WriteHeader(code)
}
