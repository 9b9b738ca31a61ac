package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/initify/callconnect/internal/logger"
)

const (
	answerPath      = "/webhooks/answer"
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// NewRouterWithServer returns an http.Handler (Gin engine) with the answer routes wired to s.
func NewRouterWithServer(s *Server) http.Handler {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery(), requestID(), accessLog(s.log))

	r.GET(answerPath, s.Answer)
	r.POST(answerPath, s.Answer)

	return r
}

// RouterFromEnv creates a Server from env and returns a Gin router wired to it.
func RouterFromEnv() (http.Handler, error) {
	cfg, err := LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewRouterWithServer(NewServer(cfg, logger.New(cfg.LogLevel))), nil
}

// requestID keeps the caller's X-Request-ID or mints one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.DebugContext(c.Request.Context(), "request",
			"request_id", c.GetString(requestIDKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
