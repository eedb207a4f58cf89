package analytics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"payments-intelligence-system/internal/api/rest"
	"payments-intelligence-system/internal/config"
	"payments-intelligence-system/internal/models"
	"payments-intelligence-system/internal/services"
)

// respondQueryError переводит доменные ошибки фасада в HTTP-статусы
func respondQueryError(c *gin.Context, err error) {
	var unknownErr *models.UnknownProjectionError
	if errors.As(err, &unknownErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": unknownErr.Error()})
		return
	}

	var filterErr *models.InvalidFilterError
	if errors.As(err, &filterErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": filterErr.Error()})
		return
	}

	var timeoutErr *models.TimeoutError
	if errors.As(err, &timeoutErr) || errors.Is(err, context.DeadlineExceeded) {
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Query timed out"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to execute query"})
}

// SetupRoutes настраивает маршруты для analytics service
func SetupRoutes(router *gin.Engine, svc services.AnalyticsService, cfg *config.Config) {
	queryTimeout := time.Duration(cfg.Analytics.QueryTimeoutSeconds) * time.Second

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	api := router.Group("/api/v1")
	{
		// Проекции строятся от активного среза леджера с учетом фильтров
		api.GET("/projections/:name", func(c *gin.Context) {
			ctx, cancel := context.WithTimeout(c.Request.Context(), queryTimeout)
			defer cancel()

			data, err := svc.Query(ctx, c.Param("name"), c.Request.URL.Query())
			if err != nil {
				respondQueryError(c, err)
				return
			}

			c.Data(http.StatusOK, "application/json; charset=utf-8", data)
		})

		api.GET("/kpis", func(c *gin.Context) {
			ctx, cancel := context.WithTimeout(c.Request.Context(), queryTimeout)
			defer cancel()

			kpis, err := svc.OverallKPIs(ctx)
			if err != nil {
				respondQueryError(c, err)
				return
			}

			c.JSON(http.StatusOK, kpis)
		})

		// Лента оповещений, отсортированная по серьезности
		api.GET("/alerts", func(c *gin.Context) {
			ctx, cancel := context.WithTimeout(c.Request.Context(), queryTimeout)
			defer cancel()

			alertList, err := svc.Alerts(ctx, c.Query("day"), c.Query("from"), c.Query("to"))
			if err != nil {
				respondQueryError(c, err)
				return
			}

			c.JSON(http.StatusOK, gin.H{
				"alerts": alertList,
				"count":  len(alertList),
			})
		})
	}

	// Используем общие endpoints (health, events, stats)
	rest.SetupCommonEndpoints(router)
}
