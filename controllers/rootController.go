package controllers

import (
	"CareLedger/database"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// healthHandler reports whether the database and Redis are reachable.
func healthHandler(c *gin.Context) {
	status := "ok"
	httpStatus := http.StatusOK

	dbStatus := "up"
	if sqlDB, err := database.DB.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		dbStatus = "down"
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	redisStatus := "up"
	if database.RedisClient == nil || database.RedisClient.Ping(c.Request.Context()).Err() != nil {
		redisStatus = "down"
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, gin.H{
		"status":    status,
		"database":  dbStatus,
		"redis":     redisStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func rootHandler(c *gin.Context) {
	c.String(http.StatusOK, "CareLedger API")
}

// SetupRootRoute sets up the root and health routes for the application
func SetupRootRoute(router *gin.Engine) {
	router.GET("/", rootHandler)
	router.GET("/api/health", healthHandler)
}
