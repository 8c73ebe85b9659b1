package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) RegisterRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.Appeared).String(),
			"service": "bowlctl",
			"version": "0.0.1",
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/scoreboard", func(c *gin.Context) {
		board, version, updated := s.store.Snapshot()
		if version == 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no game in progress"})
			return
		}
		tag := etag(version)
		c.Header("ETag", tag)
		if c.GetHeader("If-None-Match") == tag {
			c.Status(http.StatusNotModified)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"version": version,
			"updated": updated.UTC().Format(time.RFC3339),
			"board":   board,
		})
	})

	s.router.GET("/scoreboard/:name", func(c *gin.Context) {
		board, version, _ := s.store.Snapshot()
		if version == 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no game in progress"})
			return
		}
		row, ok := board.Lookup(c.Param("name"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "competitor not found"})
			return
		}
		c.JSON(http.StatusOK, row)
	})
}

func etag(version uint64) string {
	return `"` + strconv.FormatUint(version, 10) + `"`
}
