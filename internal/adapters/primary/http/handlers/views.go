package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"car-price-service/internal/adapters/primary/http/dto"
	"car-price-service/internal/core/domain"
	"car-price-service/internal/core/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var chartColors = []string{"steelblue", "orange"}

// Templates parses the embedded HTML pages for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templatesFS, "templates/*.tmpl"))
}

type predictPage struct {
	Active string
	Bounds []domain.Bound
	Input  dto.PredictionRequest
	Error  string
	Result *dto.PredictionResponse
	Bars   []dto.BarPair
}

type dataPage struct {
	Active  string
	Error   string
	Columns []string
	Rows    [][]string
	Plots   []dto.ScatterPlot
	Width   float64
	Height  float64
}

type aboutPage struct {
	Active string
	About  dto.AboutResponse
}

func (h *Handler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/predict")
}

func (h *Handler) PredictPage(c *gin.Context) {
	c.HTML(http.StatusOK, "predict.tmpl", newPredictPage(minimumInput()))
}

func (h *Handler) PredictSubmit(c *gin.Context) {
	var req dto.PredictionRequest
	if err := c.ShouldBind(&req); err != nil {
		page := newPredictPage(req)
		page.Error = "Each value must be within its allowed range."
		c.HTML(http.StatusBadRequest, "predict.tmpl", page)
		return
	}

	page := newPredictPage(req)
	features := req.ToFeatureVector()
	est, err := h.estimator.Estimate(c.Request.Context(), features)
	if err != nil {
		log.WithError(err).Error("estimate price failed")
		page.Error = "The price could not be estimated."
		c.HTML(statusFor(err), "predict.tmpl", page)
		return
	}

	result := dto.ToPredictionResponse(features, est, h.estimator.Compare(features))
	page.Result = &result
	page.Bars = dto.NewBarChart(result.Comparison)
	c.HTML(http.StatusOK, "predict.tmpl", page)
}

func (h *Handler) DataPage(c *gin.Context) {
	page := dataPage{Active: "data", Width: dto.PlotWidth, Height: dto.PlotHeight}

	columns, rows, err := h.datasetSvc.Preview(c.Request.Context(), services.DefaultPreviewRows)
	if err == nil {
		var charts []*domain.ScatterSeries
		charts, err = h.datasetSvc.Charts(c.Request.Context())
		for i, s := range charts {
			page.Plots = append(page.Plots, dto.NewScatterPlot(s, chartColors[i%len(chartColors)]))
		}
	}
	if err != nil {
		log.WithError(err).Warn("data page unavailable")
		page.Error = "The dataset could not be loaded."
		c.HTML(statusFor(err), "data.tmpl", page)
		return
	}

	page.Columns = columns
	page.Rows = rows
	c.HTML(http.StatusOK, "data.tmpl", page)
}

func (h *Handler) AboutPage(c *gin.Context) {
	c.HTML(http.StatusOK, "about.tmpl", aboutPage{Active: "about", About: dto.About})
}

func newPredictPage(in dto.PredictionRequest) predictPage {
	return predictPage{Active: "predict", Bounds: domain.FeatureBounds, Input: in}
}

// minimumInput pre-fills the form with each lower bound.
func minimumInput() dto.PredictionRequest {
	return dto.PredictionRequest{
		HighwayMPG: domain.FeatureBounds[0].Min,
		CurbWeight: domain.FeatureBounds[1].Min,
		Horsepower: domain.FeatureBounds[2].Min,
		CarWidth:   domain.FeatureBounds[3].Min,
	}
}
