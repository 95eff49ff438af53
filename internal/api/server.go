package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hazza/property-roi/internal/calculation"
	"github.com/hazza/property-roi/internal/config"
	"github.com/hazza/property-roi/internal/domain"
	"github.com/hazza/property-roi/internal/output"
)

// Server is the HTTP boundary for the calculator. Every request is
// independent: nothing is shared between calls except read-only settings.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	settings   config.Settings
	calc       *calculation.Calculator
	exporter   *output.Exporter
	logger     calculation.Logger
	startedAt  time.Time
}

// CalculateResponse pairs the raw assessment with the grouped display payload.
type CalculateResponse struct {
	Assessment domain.ReturnAssessment `json:"assessment"`
	Display    output.Display          `json:"display"`
}

// NewServer creates a new API server bound to settings.API.Addr.
func NewServer(settings config.Settings, logger calculation.Logger) *Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	calc := calculation.NewCalculator()
	calc.SetLogger(logger)
	exporter := output.NewExporter(settings.Report)
	exporter.Logger = logger

	s := &Server{
		settings:  settings,
		calc:      calc,
		exporter:  exporter,
		logger:    logger,
		startedAt: time.Now(),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if settings.DebugEnabled() {
		r.Use(gin.Logger())
	}
	api := r.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/defaults", s.handleDefaults)
	api.POST("/calculate", s.handleCalculate)
	api.POST("/export", s.handleExport)
	s.router = r

	s.httpServer = &http.Server{
		Addr:              settings.API.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Infof("api listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(s.startedAt).Seconds()),
	})
}

func (s *Server) handleDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, config.NewInputParser().CreateExampleInputs())
}

// bindInputs decodes the request body over the form defaults, so omitted
// fields keep their default value.
func (s *Server) bindInputs(c *gin.Context) (domain.PropertyInputs, bool) {
	in := config.NewInputParser().CreateExampleInputs()
	if err := c.ShouldBindJSON(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return domain.PropertyInputs{}, false
	}
	return *in, true
}

func (s *Server) handleCalculate(c *gin.Context) {
	in, ok := s.bindInputs(c)
	if !ok {
		return
	}
	a := s.calc.Assess(in)
	report := output.BuildReport(a, s.settings.Report, calculation.Now())
	c.JSON(http.StatusOK, CalculateResponse{
		Assessment: a,
		Display:    output.DisplayPayload(report),
	})
}

func (s *Server) handleExport(c *gin.Context) {
	in, ok := s.bindInputs(c)
	if !ok {
		return
	}
	doc, err := s.exporter.Render(s.calc.Assess(in))
	if err != nil {
		s.logger.Errorf("export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate the report document, please try again"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	c.Header("Content-Length", strconv.Itoa(len(doc.Data)))
	c.Data(http.StatusOK, doc.MIMEType, doc.Data)
}
