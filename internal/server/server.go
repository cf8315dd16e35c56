// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the extraction pipeline over HTTP.
//
// Routes:
//
//	GET  /               health check
//	POST /process-text   JSON transcript + team members -> tasks
//	POST /process-audio  multipart audio + team members -> tasks
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pdiddy/meeting-tasks/internal/extract"
	"github.com/pdiddy/meeting-tasks/internal/transcribe"
	"github.com/pdiddy/meeting-tasks/pkg/types"
)

const requestIDHeader = "X-Request-ID"

// Server is the meeting-tasks HTTP service.
type Server struct {
	cfg         types.ServerConfig
	splitter    extract.Splitter
	transcriber transcribe.Transcriber
	logger      *slog.Logger
	router      *gin.Engine
	httpSrv     *http.Server
}

// New creates a Server. transcriber may be nil, in which case
// /process-audio responds 503.
func New(cfg types.ServerConfig, splitter extract.Splitter, transcriber transcribe.Transcriber, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = types.DefaultPipelineConfig().Server.MaxUploadBytes
	}

	router := gin.New()
	s := &Server{
		cfg:         cfg,
		splitter:    splitter,
		transcriber: transcriber,
		logger:      logger,
		router:      router,
	}

	router.Use(gin.Recovery(), s.requestID(), s.accessLog())

	router.GET("/", s.handleHealth)
	router.POST("/process-text", s.handleProcessText)
	router.POST("/process-audio", s.handleProcessAudio)

	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	if addr == "" {
		addr = s.cfg.Addr
	}
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("addr", addr))
		errCh <- s.httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("server shutting down")
		return s.httpSrv.Shutdown(shutdownCtx)
	}
}

// requestID echoes an incoming X-Request-ID or assigns a new one.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", c.GetString(requestIDHeader)),
		)
	}
}

// abort writes a FastAPI-style {"detail": ...} error body.
func abort(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}
