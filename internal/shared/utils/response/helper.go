// Package response defines the JSON envelope shared by every endpoint.
// Reports ride in data on success; rate-limit and lookup failures put
// detail in errors. The dashboard client branches on the status string.
package response

import "github.com/gin-gonic/gin"

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}
