package analytics

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tourlytics/internal/records"
	"tourlytics/internal/shared/utils/response"
	"tourlytics/internal/stats"
)

// Controller defines the analytics controller interface
type Controller interface {
	GetOverview(c *gin.Context)
	GetSpendingBreakdown(c *gin.Context)
	GetSegmentation(c *gin.Context)
	GetCohortAnalysis(c *gin.Context)
	GetRegressionAnalysis(c *gin.Context)
	GetNationalities(c *gin.Context)
	GetNationalityDetail(c *gin.Context)
	GetTimeSeries(c *gin.Context)
	GetDiagnostics(c *gin.Context)
}

// controller implements the Controller interface
type controller struct {
	service Service
}

// NewController creates a new analytics controller instance
func NewController(service Service) Controller {
	return &controller{service: service}
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, records.ErrDataUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, stats.ErrInsufficientData):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrNationalityNotFound):
		return http.StatusNotFound
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

func (ctrl *controller) GetOverview(c *gin.Context) {
	overview, err := ctrl.service.GetOverview()
	respond(c, overview, err, "Overview retrieved successfully")
}

func (ctrl *controller) GetSpendingBreakdown(c *gin.Context) {
	breakdown, err := ctrl.service.GetSpendingBreakdown()
	respond(c, breakdown, err, "Spending breakdown retrieved successfully")
}

func (ctrl *controller) GetSegmentation(c *gin.Context) {
	segmentation, err := ctrl.service.GetSegmentation()
	respond(c, segmentation, err, "Customer segmentation retrieved successfully")
}

func (ctrl *controller) GetCohortAnalysis(c *gin.Context) {
	cohorts, err := ctrl.service.GetCohortAnalysis()
	respond(c, cohorts, err, "Cohort analysis retrieved successfully")
}

func (ctrl *controller) GetRegressionAnalysis(c *gin.Context) {
	regression, err := ctrl.service.GetRegressionAnalysis()
	respond(c, regression, err, "Regression analysis retrieved successfully")
}

func (ctrl *controller) GetNationalities(c *gin.Context) {
	list, err := ctrl.service.GetNationalities()
	respond(c, list, err, "Nationalities retrieved successfully")
}

func (ctrl *controller) GetNationalityDetail(c *gin.Context) {
	nationality := c.Param("nationality")
	if nationality == "" {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Nationality is required", nil, nil)
		return
	}

	detail, err := ctrl.service.GetNationalityDetail(nationality)
	respond(c, detail, err, "Nationality details retrieved successfully")
}

func (ctrl *controller) GetTimeSeries(c *gin.Context) {
	series, err := ctrl.service.GetTimeSeries()
	respond(c, series, err, "Time series retrieved successfully")
}

func (ctrl *controller) GetDiagnostics(c *gin.Context) {
	diagnostics, err := ctrl.service.GetDiagnostics()
	respond(c, diagnostics, err, "Diagnostics retrieved successfully")
}
