package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"car-price-service/internal/adapters/primary/http/dto"
	"car-price-service/internal/core/domain"
	"car-price-service/internal/core/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) PreviewDataset(c *gin.Context) {
	rows, err := strconv.Atoi(c.DefaultQuery("rows", strconv.Itoa(services.DefaultPreviewRows)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidRowCount.Error()})
		return
	}

	columns, head, err := h.datasetSvc.Preview(c.Request.Context(), rows)
	if err != nil {
		log.WithError(err).Warn("dataset preview failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DatasetPreviewResponse{Columns: columns, Rows: head})
}

func (h *Handler) DatasetCharts(c *gin.Context) {
	var series []*domain.ScatterSeries
	var err error

	// ?x=&y= plots an arbitrary pair; otherwise the two fixed charts.
	if x, y := c.Query("x"), c.Query("y"); x != "" || y != "" {
		if y == "" {
			y = "price"
		}
		var s *domain.ScatterSeries
		s, err = h.datasetSvc.Scatter(c.Request.Context(), x, y)
		series = []*domain.ScatterSeries{s}
	} else {
		series, err = h.datasetSvc.Charts(c.Request.Context())
	}
	if err != nil {
		log.WithError(err).Warn("dataset charts failed")
		mapDomainError(c, err)
		return
	}

	resp := dto.ChartsResponse{Charts: make([]dto.ScatterSeriesResponse, 0, len(series))}
	for _, s := range series {
		resp.Charts = append(resp.Charts, dto.ToScatterSeriesResponse(s))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DatasetSummary(c *gin.Context) {
	var columns []string
	if raw := c.Query("columns"); raw != "" {
		for _, col := range strings.Split(raw, ",") {
			if col = strings.TrimSpace(col); col != "" {
				columns = append(columns, col)
			}
		}
	}

	summary, err := h.datasetSvc.Summary(c.Request.Context(), columns)
	if err != nil {
		log.WithError(err).Warn("dataset summary failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}
