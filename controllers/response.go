package controllers

import (
	"net/http"

	"payment-gateway/services"

	"github.com/gin-gonic/gin"
)

// All responses use the same JSON envelope: {"success": true, ...data} on
// success, {"success": false, "error": msg} on failure.

func respondSuccess(c *gin.Context, data gin.H) {
	payload := gin.H{"success": true}
	for k, v := range data {
		payload[k] = v
	}
	c.JSON(http.StatusOK, payload)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

func respondServiceError(c *gin.Context, err *services.ServiceError) {
	status := err.StatusCode
	if status == 0 {
		status = http.StatusBadRequest
	}
	respondError(c, status, err.Message)
}
