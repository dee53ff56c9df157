package handlers

import (
	"net/http"

	"car-price-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) Predict(c *gin.Context) {
	var req dto.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	features := req.ToFeatureVector()
	est, err := h.estimator.Estimate(c.Request.Context(), features)
	if err != nil {
		log.WithError(err).Error("estimate price failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictionResponse(features, est, h.estimator.Compare(features)))
}

func (h *Handler) GetModel(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToModelInfoResponse(h.estimator.Model()))
}

func (h *Handler) GetAbout(c *gin.Context) {
	c.JSON(http.StatusOK, dto.About)
}
