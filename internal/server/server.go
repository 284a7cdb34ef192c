package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cblythe8/Stock-Crypto-Tracker/internal/model"
	"github.com/cblythe8/Stock-Crypto-Tracker/internal/series"
	"github.com/cblythe8/Stock-Crypto-Tracker/internal/tracker"
)

// Server exposes the tracker core as a JSON API for the web dashboard.
// Holdings and alerts travel in the request body on every call; the server
// keeps no session state.
type Server struct {
	tracker *tracker.Tracker
	log     *logrus.Logger
}

// New creates a Server.
func New(tr *tracker.Tracker, log *logrus.Logger) *Server {
	return &Server{tracker: tr, log: log}
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := r.Group("/api")
	api.GET("/quote/:symbol", s.getQuote)
	api.GET("/history/:symbol", s.getHistory)
	api.GET("/compare", s.getCompare)
	api.POST("/portfolio", s.postPortfolio)
	api.POST("/alerts", s.postAlerts)
	return r
}

func (s *Server) getQuote(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	q, ok := s.tracker.Quote(c.Request.Context(), symbol)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no data available for symbol " + symbol})
		return
	}
	c.JSON(http.StatusOK, q)
}

func (s *Server) getHistory(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	period := c.DefaultQuery("period", "1mo")
	interval := c.DefaultQuery("interval", "1d")

	hist, err := s.tracker.History(c.Request.Context(), symbol, period, interval)
	if err != nil {
		s.log.Warnf("history fetch failed: %v", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "no data found for symbol " + symbol})
		return
	}
	st, err := series.Compute(hist.Closes())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no data found for symbol " + symbol})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"series": hist,
		"stats": gin.H{
			"current":     st.Last,
			"period_high": st.High,
			"period_low":  st.Low,
		},
	})
}

func (s *Server) getCompare(c *gin.Context) {
	raw := c.Query("symbols")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbols query parameter is required"})
		return
	}
	var symbols []string
	for _, part := range strings.Split(raw, ",") {
		if sym := strings.ToUpper(strings.TrimSpace(part)); sym != "" {
			symbols = append(symbols, sym)
		}
	}
	period := c.DefaultQuery("period", "3mo")
	interval := c.DefaultQuery("interval", "1d")
	normalize := c.DefaultQuery("normalize", "true") == "true"

	lines := s.tracker.Compare(c.Request.Context(), symbols, period, interval, normalize)
	if len(lines) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "could not load data for the given symbols"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lines": lines})
}

type portfolioRequest struct {
	Holdings []model.Holding `json:"holdings" binding:"required"`
}

func (s *Server) postPortfolio(c *gin.Context) {
	var req portfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.log.Warnf("invalid portfolio body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.tracker.Valuate(c.Request.Context(), req.Holdings))
}

type alertsRequest struct {
	Alerts        []model.Alert `json:"alerts" binding:"required"`
	TriggeredOnly bool          `json:"triggered_only"`
}

func (s *Server) postAlerts(c *gin.Context) {
	var req alertsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.log.Warnf("invalid alerts body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	results := s.tracker.CheckAlerts(c.Request.Context(), req.Alerts, req.TriggeredOnly)
	c.JSON(http.StatusOK, gin.H{"results": results})
}
