package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger logs one line per request, at error level for 5xx responses.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := logger.Info()
		if status >= 500 {
			event = logger.Error()
			if len(c.Errors) > 0 {
				event = event.Err(c.Errors.Last().Err)
			}
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http request")
	}
}

// NewRouter builds the HTTP API with every handler registered.
func NewRouter(logger zerolog.Logger, bookings *BookingHandler, flights *FlightHandler, inventory *InventoryHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(logger))

	bookings.Register(router.Group("/bookings"))
	bookings.RegisterUserRoutes(router.Group("/users"))
	flightGroup := router.Group("/flights")
	flights.Register(flightGroup)
	inventory.Register(flightGroup)

	return router
}
