// Package server is the HTTP boundary: the MCP streamable transport
// mounted at /mcp and the download endpoint that hands out generated
// PDFs by artifact ID.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/docfoundry/docgen-mcp/errors"
	"github.com/docfoundry/docgen-mcp/logger"
	"github.com/docfoundry/docgen-mcp/storage"
	"github.com/docfoundry/docgen-mcp/version"
)

// shutdownGrace bounds how long in-flight requests get on shutdown
const shutdownGrace = 10 * time.Second

// NewRouter builds the gin engine with the download endpoint, health
// check, and the MCP transport mounted at /mcp.
func NewRouter(store *storage.ArtifactStore, mcpHandler http.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(), gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": version.Get().Version,
		})
	})
	router.GET("/files/:id", downloadHandler(store))
	router.Any("/mcp", gin.WrapH(mcpHandler))

	return router
}

// Run serves the router until ctx is cancelled, then drains in-flight
// requests before returning.
func Run(ctx context.Context, port int, router *gin.Engine) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infow("http server listening", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "http server failed")
	case <-ctx.Done():
	}

	logger.Infow("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "http server shutdown failed")
	}
	return nil
}

// requestLogger logs one line per request through the shared zap logger
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Infow("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client", c.ClientIP(),
		)
	}
}
