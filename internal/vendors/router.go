package vendors

import (
	"github.com/gin-gonic/gin"
)

// SetupVendorRoutes registers the vendor views on the API group.
func SetupVendorRoutes(rg *gin.RouterGroup, controller Controller) {
	vendor := rg.Group("/vendor")
	{
		vendor.GET("/accommodation", controller.GetAccommodationInsights)
		vendor.GET("/attractions", controller.GetAttractionInsights)
		vendor.GET("/food", controller.GetFoodInsights)
		vendor.GET("/shopping", controller.GetShoppingInsights)
		vendor.GET("/transport", controller.GetTransportInsights)
	}
}
