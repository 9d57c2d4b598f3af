package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"MarketCalendar/internal/alert"
	"MarketCalendar/internal/calendar"
	"MarketCalendar/internal/export"
	"MarketCalendar/internal/model"
	"MarketCalendar/internal/theme"
)

func (h ApiHandler) getView(c *gin.Context) {
	v, err := h.view(c)
	if err != nil {
		h.fail(err, c)
		return
	}
	c.JSON(http.StatusOK, v)
}

type dataResponse struct {
	Timeframe model.Timeframe       `json:"timeframe"`
	Data      []model.FinancialData `json:"data"`
}

func (h ApiHandler) getData(c *gin.Context) {
	v, err := h.view(c)
	if err != nil {
		h.fail(err, c)
		return
	}
	c.JSON(http.StatusOK, dataResponse{Timeframe: v.Timeframe, Data: v.Data})
}

type calendarResponse struct {
	Month    string               `json:"month"`
	Year     int                  `json:"year"`
	Metric   model.MetricType     `json:"metric"`
	Weekdays []string             `json:"weekdays"`
	Cells    []model.CalendarCell `json:"cells"`
}

func (h ApiHandler) getCalendar(c *gin.Context) {
	v, err := h.view(c)
	if err != nil {
		h.fail(err, c)
		return
	}
	c.JSON(http.StatusOK, calendarResponse{
		Month:    calendar.MonthName(v.CurrentDate),
		Year:     v.CurrentDate.Year(),
		Metric:   v.Metric,
		Weekdays: calendar.Weekdays,
		Cells:    v.Calendar,
	})
}

type navigateRequest struct {
	Key string `json:"key" binding:"required,oneof=left right up down"`
}

func (h ApiHandler) navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	v, err := h.Dashboard.Navigate(c.Request.Context(), calendar.Key(req.Key))
	if err != nil {
		h.fail(err, c)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h ApiHandler) getPatterns(c *gin.Context) {
	v, err := h.view(c)
	if err != nil {
		h.fail(err, c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patterns": nonNil(v.Patterns)})
}

func (h ApiHandler) getSummary(c *gin.Context) {
	v, err := h.view(c)
	if err != nil {
		h.fail(err, c)
		return
	}
	c.JSON(http.StatusOK, v.Summary)
}

func (h ApiHandler) listAlerts(c *gin.Context) {
	v, err := h.Dashboard.View()
	if err != nil {
		h.fail(err, c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": v.Alerts, "triggered": nonNil(v.Triggered)})
}

type alertRequest struct {
	Type      model.AlertType `json:"type" binding:"required"`
	Condition model.Condition `json:"condition" binding:"required"`
	Threshold float64         `json:"threshold"`
	IsActive  *bool           `json:"isActive"`
	Message   string          `json:"message"`
}

func (h ApiHandler) addAlert(c *gin.Context) {
	var req alertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	created, _, err := h.Dashboard.AddAlert(model.Alert{
		Type:      req.Type,
		Condition: req.Condition,
		Threshold: req.Threshold,
		IsActive:  active,
		Message:   req.Message,
	})
	if err != nil {
		h.fail(err, c)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h ApiHandler) updateAlert(c *gin.Context) {
	var patch alert.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	updated, _, err := h.Dashboard.UpdateAlert(c.Param("id"), patch)
	if err != nil {
		h.fail(err, c)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h ApiHandler) deleteAlert(c *gin.Context) {
	if _, err := h.Dashboard.DeleteAlert(c.Param("id")); err != nil {
		h.fail(err, c)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h ApiHandler) triggeredAlerts(c *gin.Context) {
	v, err := h.view(c)
	if err != nil {
		h.fail(err, c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(v.Triggered), "alerts": nonNil(v.Triggered)})
}

func (h ApiHandler) getComparison(c *gin.Context) {
	v, err := h.view(c)
	if err != nil {
		h.fail(err, c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": v.Comparison})
}

type periodRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Color     string `json:"color"`
}

func (h ApiHandler) addPeriod(c *gin.Context) {
	var req periodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	start, err := calendar.ParseDate(req.StartDate)
	if err != nil {
		h.returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	end, err := calendar.ParseDate(req.EndDate)
	if err != nil {
		h.returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	p, _, err := h.Dashboard.AddPeriod(req.Name, start, end, req.Color)
	if err != nil {
		h.fail(err, c)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h ApiHandler) deletePeriod(c *gin.Context) {
	if _, err := h.Dashboard.RemovePeriod(c.Param("id")); err != nil {
		h.fail(err, c)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h ApiHandler) listThemes(c *gin.Context) {
	active := ""
	if v, err := h.Dashboard.View(); err == nil {
		active = v.Theme.ID
	}
	c.JSON(http.StatusOK, gin.H{"active": active, "themes": theme.List()})
}

// getTheme falls back to the default theme for unknown IDs.
func (h ApiHandler) getTheme(c *gin.Context) {
	c.JSON(http.StatusOK, theme.Get(c.Param("id")))
}

type themeRequest struct {
	ID string `json:"id" binding:"required"`
}

func (h ApiHandler) setTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	v, err := h.Dashboard.SetTheme(req.ID)
	if err != nil {
		h.fail(err, c)
		return
	}
	c.JSON(http.StatusOK, v.Theme)
}

func (h ApiHandler) exportView(c *gin.Context) {
	e, err := export.For(c.Param("format"))
	if err != nil {
		h.fail(err, c)
		return
	}
	v, err := h.view(c)
	if err != nil {
		h.fail(err, c)
		return
	}

	var buf bytes.Buffer
	if err := e.Export(c.Request.Context(), &buf, v); err != nil {
		h.Log.Errorw("export failed", "format", c.Param("format"), "error", err)
		h.fail(err, c)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename(v.CurrentDate, e)))
	c.Data(http.StatusOK, e.ContentType(), buf.Bytes())
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
