package api

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetGuide(c *gin.Context) {
	data, err := os.ReadFile(h.outputPath)
	if err != nil {
		slog.Error("Failed to read guide file", "path", h.outputPath, "error", err)
		c.Status(http.StatusNotFound)
		return
	}

	c.Header("X-Generated-At", h.generatedAt.Format(time.RFC3339))
	c.Data(http.StatusOK, "application/xml; charset=utf-8", data)
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp":    time.Now().Format(time.RFC3339),
		"generated_at": h.generatedAt.Format(time.RFC3339),
		"programs":     h.programs,
	}

	if info, err := os.Stat(h.outputPath); err == nil {
		health["guide_size"] = info.Size()
	}

	c.JSON(http.StatusOK, health)
}
