// Package api holds the JSON envelope shared by every HTTP handler.
// Every body carries "success"; failures add a user-facing "error" message.
package api

import "github.com/gin-gonic/gin"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MessageResponse is a successful body that only carries a message.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Error writes a failure envelope.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Success: false, Error: msg})
}

// Abort writes a failure envelope and stops the handler chain.
func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Error: msg})
}

// Message writes a success envelope with a message.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, MessageResponse{Success: true, Message: msg})
}
