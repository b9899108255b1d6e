package vendors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tourlytics/internal/records"
	"tourlytics/internal/shared/utils/response"
	"tourlytics/internal/stats"
)

// Controller defines the vendor analytics controller interface
type Controller interface {
	GetAccommodationInsights(c *gin.Context)
	GetAttractionInsights(c *gin.Context)
	GetFoodInsights(c *gin.Context)
	GetShoppingInsights(c *gin.Context)
	GetTransportInsights(c *gin.Context)
}

// controller implements the Controller interface
type controller struct {
	service Service
}

// NewController creates a new vendor analytics controller instance
func NewController(service Service) Controller {
	return &controller{service: service}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, records.ErrDataUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, stats.ErrInsufficientData):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func respond[T any](c *gin.Context, result T, err error, successMessage string) {
	if err != nil {
		response.RespondJSON(c, "error", statusFor(err), err.Error(), nil, nil)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, successMessage, result, nil)
}

func (ctrl *controller) GetAccommodationInsights(c *gin.Context) {
	report, err := ctrl.service.GetAccommodationInsights()
	respond(c, report, err, "Accommodation insights retrieved successfully")
}

func (ctrl *controller) GetAttractionInsights(c *gin.Context) {
	report, err := ctrl.service.GetAttractionInsights()
	respond(c, report, err, "Attraction insights retrieved successfully")
}

func (ctrl *controller) GetFoodInsights(c *gin.Context) {
	report, err := ctrl.service.GetFoodInsights()
	respond(c, report, err, "Food insights retrieved successfully")
}

func (ctrl *controller) GetShoppingInsights(c *gin.Context) {
	report, err := ctrl.service.GetShoppingInsights()
	respond(c, report, err, "Shopping insights retrieved successfully")
}

func (ctrl *controller) GetTransportInsights(c *gin.Context) {
	report, err := ctrl.service.GetTransportInsights()
	respond(c, report, err, "Transport insights retrieved successfully")
}
