package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/auctionhaus/go-auctionhaus/env"
)

func healthCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"env":     env.GetString("ENV"),
			"version": env.GetString("VERSION"),
		})
	}
}
