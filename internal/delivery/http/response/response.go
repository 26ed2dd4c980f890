package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the API envelope: exactly one of Data or Errors is populated.
type Response struct {
	Data   interface{} `json:"data,omitempty"`
	Errors []string    `json:"errors,omitempty"`
}

// Success sends a data envelope
func Success(c *gin.Context, code int, data interface{}) {
	c.JSON(code, Response{Data: data})
}

// Error sends an errors envelope
func Error(c *gin.Context, code int, messages ...string) {
	c.JSON(code, Response{Errors: messages})
}
