package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"MarketCalendar/internal/alert"
	"MarketCalendar/internal/calendar"
	"MarketCalendar/internal/compare"
	"MarketCalendar/internal/dashboard"
	"MarketCalendar/internal/export"
	"MarketCalendar/internal/model"
)

// ApiHandler serves the dashboard over HTTP/JSON.
type ApiHandler struct {
	Dashboard *dashboard.Dashboard
	Log       *zap.SugaredLogger
}

// Router builds the gin engine with every route registered.
func (h ApiHandler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(h.logRequestMiddleware)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "market seasonality calendar"})
	})

	api := router.Group("/api")
	api.GET("/view", h.getView)
	api.GET("/data", h.getData)
	api.GET("/calendar", h.getCalendar)
	api.POST("/calendar/navigate", h.navigate)
	api.GET("/patterns", h.getPatterns)
	api.GET("/summary", h.getSummary)

	api.GET("/alerts", h.listAlerts)
	api.POST("/alerts", h.addAlert)
	api.PATCH("/alerts/:id", h.updateAlert)
	api.DELETE("/alerts/:id", h.deleteAlert)
	api.GET("/alerts/triggered", h.triggeredAlerts)

	api.GET("/compare", h.getComparison)
	api.POST("/compare/periods", h.addPeriod)
	api.DELETE("/compare/periods/:id", h.deletePeriod)

	api.GET("/themes", h.listThemes)
	api.GET("/themes/:id", h.getTheme)
	api.PUT("/theme", h.setTheme)

	api.GET("/export/:format", h.exportView)

	return router
}

// StartApi serves on the given port until the server fails.
func (h ApiHandler) StartApi(port int) error {
	h.Log.Infow("api listening", "port", port)
	return h.Router().Run(fmt.Sprintf(":%d", port))
}

func (h ApiHandler) logRequestMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()
	h.Log.Infow("request",
		"method", c.Request.Method,
		"route", c.FullPath(),
		"status", c.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}

func (h ApiHandler) returnErrorJson(err error, c *gin.Context) {
	h.returnErrorJsonCode(err, c, statusOf(err))
}

func (h ApiHandler) returnErrorJsonCode(err error, c *gin.Context, code int) {
	if code >= http.StatusInternalServerError {
		h.Log.Errorw("request failed", "route", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, alert.ErrAlertNotFound), errors.Is(err, dashboard.ErrPeriodNotFound):
		return http.StatusNotFound
	case errors.Is(err, alert.ErrInvalidAlert), errors.Is(err, compare.ErrInvalidPeriod),
		errors.Is(err, export.ErrUnknownFormat), errors.Is(err, export.ErrEmptyInput):
		return http.StatusBadRequest
	case errors.Is(err, dashboard.ErrNotLoaded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// view applies the optional query selections (timeframe, metric, theme,
// date, selected) and returns the resulting snapshot.
//
// Selections are written to the shared Dashboard, so they are sticky: a
// later request without query parameters, from any client, sees the last
// timeframe, metric, date and selection that was applied. Clients that need
// a fixed view pass every selection they depend on.
func (h ApiHandler) view(c *gin.Context) (model.View, error) {
	d := h.Dashboard
	v, err := d.View()
	if err != nil {
		return v, err
	}

	if s := c.Query("date"); s != "" {
		day, err := calendar.ParseDate(s)
		if err != nil {
			return v, badRequest(err)
		}
		if v, err = d.SetDate(c.Request.Context(), day); err != nil {
			return v, err
		}
	}
	if s := c.Query("timeframe"); s != "" {
		tf, err := model.ParseTimeframe(s)
		if err != nil {
			return v, badRequest(err)
		}
		if tf != v.Timeframe {
			if v, err = d.SetTimeframe(tf); err != nil {
				return v, err
			}
		}
	}
	if s := c.Query("metric"); s != "" {
		m, err := model.ParseMetric(s)
		if err != nil {
			return v, badRequest(err)
		}
		if v, err = d.SetMetric(m); err != nil {
			return v, err
		}
	}
	if s := c.Query("selected"); s != "" {
		day, err := calendar.ParseDate(s)
		if err != nil {
			return v, badRequest(err)
		}
		if v, err = d.Select(day); err != nil {
			return v, err
		}
	}
	return v, nil
}

type requestError struct{ err error }

func (e requestError) Error() string { return e.err.Error() }
func (e requestError) Unwrap() error { return e.err }

func badRequest(err error) error { return requestError{err: err} }

func (h ApiHandler) fail(err error, c *gin.Context) {
	var re requestError
	if errors.As(err, &re) {
		h.returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	h.returnErrorJson(err, c)
}
