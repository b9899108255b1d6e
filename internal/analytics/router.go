package analytics

import (
	"github.com/gin-gonic/gin"
)

// SetupAnalyticsRoutes registers the analytics endpoints on the API group.
func SetupAnalyticsRoutes(rg *gin.RouterGroup, controller Controller) {
	rg.GET("/overview", controller.GetOverview)
	rg.GET("/spending-breakdown", controller.GetSpendingBreakdown)
	rg.GET("/clustering", controller.GetSegmentation)
	rg.GET("/cohort", controller.GetCohortAnalysis)
	rg.GET("/regression", controller.GetRegressionAnalysis)
	rg.GET("/timeseries", controller.GetTimeSeries)
	rg.GET("/diagnostics", controller.GetDiagnostics)

	nationality := rg.Group("/nationality")
	{
		nationality.GET("", controller.GetNationalities)
		nationality.GET("/:nationality", controller.GetNationalityDetail)
	}
}
