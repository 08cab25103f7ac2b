package http

import (
	"github.com/gin-gonic/gin"
)

// envelope is the JSON body of every API response.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func success(c *gin.Context, status int, data any) {
	c.JSON(status, envelope{Success: true, Data: data})
}

func fail(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, envelope{Success: false, Error: err.Error()})
}
