package handlers

import (
	"car-price-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	estimator  *services.PriceEstimator
	datasetSvc *services.DatasetService
}

func New(estimator *services.PriceEstimator, datasetSvc *services.DatasetService) *Handler {
	return &Handler{
		estimator:  estimator,
		datasetSvc: datasetSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Prediction
	r.POST("/predictions", h.Predict)
	r.GET("/model", h.GetModel)

	// Dataset exploration
	r.GET("/dataset/preview", h.PreviewDataset)
	r.GET("/dataset/charts", h.DatasetCharts)
	r.GET("/dataset/summary", h.DatasetSummary)

	// About
	r.GET("/about", h.GetAbout)
}

// RegisterViews mounts the HTML pages. The engine must have Templates() set.
func (h *Handler) RegisterViews(r *gin.Engine) {
	r.GET("/", h.Index)
	r.GET("/predict", h.PredictPage)
	r.POST("/predict", h.PredictSubmit)
	r.GET("/data", h.DataPage)
	r.GET("/about", h.AboutPage)
}
