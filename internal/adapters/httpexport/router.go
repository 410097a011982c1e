package httpexport

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"livefeedback/internal/application"
	"livefeedback/internal/domain"
	"livefeedback/internal/domain/entities"
	"livefeedback/internal/ports/input"
)

// SecretHeader carries the admin secret on export requests.
const SecretHeader = "X-Secret"

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter builds the HTTP surface: a health probe and CSV downloads.
func NewRouter(admin input.AdminUseCase, pinger Pinger, location *time.Location) *gin.Engine {
	if location == nil {
		location = time.UTC
	}
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", HealthHandler(pinger))
	r.GET("/export/:layout", ExportHandler(admin, location, time.Now))
	return r
}

// HealthHandler answers 200 when the store responds to a ping.
func HealthHandler(pinger Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pinger != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := pinger.Ping(ctx); err != nil {
				log.Printf("⚠️ Health check failed: %v", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// ExportHandler streams the attendance CSV for the :layout path parameter.
func ExportHandler(admin input.AdminUseCase, location *time.Location, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		layout := entities.ExportLayout(strings.ToLower(strings.TrimSpace(c.Param("layout"))))

		body, err := admin.Export(c.Request.Context(), c.GetHeader(SecretHeader), layout)
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			c.Status(http.StatusForbidden)
			return
		case errors.Is(err, domain.ErrUnknownLayout):
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.Code(err)})
			return
		case err != nil:
			log.Printf("❌ Export failed (layout=%s): %v", layout, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
			return
		}

		name := application.ExportFileName(layout, now(), location)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
	}
}
