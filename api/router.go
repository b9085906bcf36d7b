package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	ctx "github.com/qlquery/qlquery/context"
	_ "github.com/qlquery/qlquery/docs" // import docs
	"github.com/qlquery/qlquery/qlquery"
	"github.com/qlquery/qlquery/utils"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func apiMetricsGet() gin.HandlerFunc {
	return func(c *gin.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	}
}

func redirectSwagger(c *gin.Context) {
	if c.Request.URL.Path == "/docs/" {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
		return
	}
	c.Next()
}

// Router returns prebuilt with routes http.Handler
// @title           qlquery API
// @version         1.0
// @description     Validate, explain and run Quod Libet queries against song records
func Router(c *ctx.QLContext) http.Handler {
	if qlquery.EnableDebug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	context = c

	router.UseRawPath = true

	config := c.Config()

	if config.LogFormat == "json" {
		utils.SetupJSONLogger(config.LogLevel, os.Stdout)
		gin.DefaultWriter = utils.LogWriter{Logger: log.Logger}
		router.Use(JSONLogger())
	} else {
		utils.SetupDefaultLogger(config.LogLevel)
		router.Use(gin.Logger())
	}

	router.Use(gin.Recovery(), gin.ErrorLogger(), RequestID())

	if config.EnableSwaggerEndpoint {
		router.Use(redirectSwagger)
		url := ginSwagger.URL("/docs/doc.json")
		router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url))
	}

	if config.EnableMetricsEndpoint {
		MetricsCollectorRegistrar.Register(router)
	}

	api := router.Group("/api")

	{
		if config.EnableMetricsEndpoint {
			api.GET("/metrics", apiMetricsGet())
		}
		api.GET("/version", apiVersion)
		api.GET("/healthy", apiHealthy)
	}

	limited := api.Group("/query")
	if config.APIRequestsPerSecond > 0 {
		limited.Use(RateLimiter(config.APIRequestsPerSecond, config.APIBurst))
	}

	{
		limited.POST("/validate", apiQueryValidate)
		limited.POST("/explain", apiQueryExplain)
		limited.POST("/filter", apiQueryFilter)
		limited.GET("/graph", apiQueryGraph)
	}

	return router
}
