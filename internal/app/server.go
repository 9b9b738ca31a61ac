package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// answerRequest holds the call details the platform attaches to the answer
// webhook, as query parameters on GET and as a JSON body on POST.
type answerRequest struct {
	UUID             string `form:"uuid" json:"uuid"`
	ConversationUUID string `form:"conversation_uuid" json:"conversation_uuid"`
	From             string `form:"from" json:"from"`
	To               string `form:"to" json:"to"`
}

type Server struct {
	cfg *Config
	log *slog.Logger
}

func NewServer(cfg *Config, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{cfg: cfg, log: log.With("component", "webhook")}
}

// Answer replies to an inbound call with an NCCO connecting it to the
// configured second number.
func (s *Server) Answer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBind(&req); err != nil {
		s.log.DebugContext(c.Request.Context(), "unreadable call details", "error", err)
	}
	s.log.InfoContext(c.Request.Context(), "inbound call",
		"request_id", c.GetString(requestIDKey),
		"uuid", req.UUID,
		"conversation_uuid", req.ConversationUUID,
		"from", req.From,
		"to", req.To,
		"connect_to", s.cfg.SecondNumber,
	)
	c.JSON(http.StatusOK, NewConnect(s.cfg.SecondNumber, s.cfg.VonageNumber))
}

// Run serves the answer routes on the configured port until ctx is done,
// then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           NewRouterWithServer(s),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
