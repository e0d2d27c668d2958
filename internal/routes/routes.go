package routes

import (
	"github.com/birthdaybliss/bliss-backend/internal/handler"
	"github.com/birthdaybliss/bliss-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Setup configures the v1 API routes
func Setup(
	router *gin.Engine,
	birthdayHandler *handler.BirthdayHandler,
	memoryHandler *handler.MemoryHandler,
	pageHandler *handler.PageHandler,
	redisClient *redis.Client,
	writeLimit bool,
) {
	api := router.Group("/api/v1")

	var write gin.HandlerFunc
	if writeLimit && redisClient != nil {
		write = middleware.RateLimit(redisClient, middleware.WriteRateLimitConfig())
	} else {
		write = func(c *gin.Context) { c.Next() }
	}

	birthdays := api.Group("/birthdays")
	birthdays.POST("", write, birthdayHandler.Create)
	birthdays.GET("/:id", birthdayHandler.Get)

	// display endpoints
	birthdays.GET("/:id/page", pageHandler.GetPage)
	birthdays.GET("/:id/countdown", pageHandler.GetCountdown)
	birthdays.GET("/:id/countdown/stream", pageHandler.StreamCountdown)
	birthdays.GET("/:id/share", pageHandler.GetShareLinks)
	birthdays.POST("/:id/message/audio", pageHandler.SpeakMessage)

	// memory wall (nested under birthdays)
	memories := birthdays.Group("/:id/memories")
	memories.GET("", memoryHandler.List)
	memories.POST("", write, memoryHandler.Append)
}
