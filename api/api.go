// Package api provides implementation of qlquery REST API
package api

import (
	"github.com/gin-gonic/gin"
	ctx "github.com/qlquery/qlquery/context"
	"github.com/qlquery/qlquery/qlquery"
)

var context *ctx.QLContext

// @Summary Server version
// @Description Get version of the server.
// @Tags Status
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/version [get]
func apiVersion(c *gin.Context) {
	c.JSON(200, gin.H{"Version": qlquery.Version})
}

// @Summary Health check
// @Description Check whether the server is up.
// @Tags Status
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/healthy [get]
func apiHealthy(c *gin.Context) {
	c.JSON(200, gin.H{"Status": "qlquery is healthy"})
}

// AbortWithJSONError aborts request with error rendered as JSON
func AbortWithJSONError(c *gin.Context, code int, err error) *gin.Error {
	c.AbortWithStatusJSON(code, gin.H{"error": err.Error()})
	return c.Error(err)
}
