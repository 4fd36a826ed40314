package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/rpgo/investment-calculator/internal/output"
)

// ProjectionResponse is the JSON body of the projection endpoints.
type ProjectionResponse struct {
	Result   *domain.ProjectionResult `json:"result"`
	Analysis domain.StrategyAnalysis  `json:"analysis"`
}

var inputKeys = []string{
	"principal",
	"tbill_yield_pct",
	"dividend_yield_pct",
	"stock_appreciation_pct",
	"years",
	"portfolio_split_pct",
}

var contentTypes = map[string]string{
	"md":   "text/markdown; charset=utf-8",
	"html": "text/html; charset=utf-8",
	"json": "application/json; charset=utf-8",
	"csv":  "text/csv; charset=utf-8",
	"txt":  "text/plain; charset=utf-8",
}

// queryInputs coerces query parameters onto the default inputs.
func queryInputs(c *gin.Context) domain.ProjectionInputs {
	raw := make(map[string]string, len(inputKeys))
	for _, k := range inputKeys {
		if v, ok := c.GetQuery(k); ok {
			raw[k] = v
		}
	}
	return config.Coerce(raw)
}

func (s *Server) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (s *Server) respondProjection(c *gin.Context, in domain.ProjectionInputs) {
	if err := config.ValidateInputs(in); err != nil {
		s.badRequest(c, err)
		return
	}
	r := s.engine.Project(in)
	s.metrics.RecordProjection("json")
	c.JSON(http.StatusOK, ProjectionResponse{Result: r, Analysis: calculation.AnalyzeStrategies(r)})
}

func (s *Server) postProjection(c *gin.Context) {
	in := domain.DefaultInputs()
	if err := c.ShouldBindJSON(&in); err != nil {
		s.badRequest(c, err)
		return
	}
	s.respondProjection(c, in)
}

func (s *Server) getProjection(c *gin.Context) {
	s.respondProjection(c, queryInputs(c))
}

func (s *Server) getFormatted(c *gin.Context) {
	name := c.Param("format")
	f := output.GetFormatterByName(name)
	if f == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": output.UnsupportedFormatError(name).Error()})
		return
	}
	f = output.WithConsoleStyle(f, s.opts.ConsoleStyle)

	in := queryInputs(c)
	if err := config.ValidateInputs(in); err != nil {
		s.badRequest(c, err)
		return
	}
	scenario := strings.TrimSpace(c.DefaultQuery("name", "Projection"))
	report := output.BuildReport(s.engine, s.opts.Currency, []domain.Scenario{{Name: scenario, Inputs: in}})
	body, err := f.Format(report)
	if err != nil {
		s.log.Error().Err(err).Str("format", f.Name()).Msg("render failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.metrics.RecordProjection(f.Name())
	c.Data(http.StatusOK, contentTypes[output.Extension(f.Name())], body)
}
