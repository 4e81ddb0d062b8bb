package router

import (
	"context"
	"net/http"
	"time"

	"github.com/wahhajahmed/KarachiSofas/internal/cache"
	"github.com/wahhajahmed/KarachiSofas/internal/logger"
	"github.com/wahhajahmed/KarachiSofas/internal/provider"

	"github.com/gin-gonic/gin"
)

const healthProbeTimeout = 2 * time.Second

// HealthHandler 探活：数据库不可用时返回 503，Redis 只作参考
func HealthHandler(c *provider.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		probeCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthProbeTimeout)
		defer cancel()

		status := http.StatusOK
		body := gin.H{
			"status":   "ok",
			"database": probeDatabase(probeCtx, c),
			"redis":    probeRedis(probeCtx),
			"queue":    c != nil && c.QueueClient.Enabled(),
		}
		if body["database"] != "up" {
			status = http.StatusServiceUnavailable
			body["status"] = "degraded"
		}
		ctx.JSON(status, body)
	}
}

func probeDatabase(ctx context.Context, c *provider.Container) string {
	if c == nil || c.DB == nil {
		return "missing"
	}
	sqlDB, err := c.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		logger.Warnw("health_database_down", "error", err)
		return "down"
	}
	return "up"
}

func probeRedis(ctx context.Context) string {
	client := cache.Client()
	if client == nil {
		return "disabled"
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return "down"
	}
	return "up"
}
