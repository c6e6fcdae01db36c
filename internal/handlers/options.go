package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"automation_snooze/internal/service"
	"automation_snooze/internal/timeutil"
)

const (
	defaultDateOptionCount = 30
	maxDateOptionCount     = 365
)

// userIDFrom reads the authenticated user id the middleware stored.
func userIDFrom(c *gin.Context) (int, bool) {
	v, ok := c.Get("userId")
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

// @Summary      Date picker options
// @Description  Consecutive calendar days starting today; labels carry the year only when it differs from the current one
// @Tags         options
// @Produce      json
// @Param        count   query  int     false  "Number of days"  default(30)
// @Param        locale  query  string  false  "Locale for labels"  example(fr)
// @Success      200  {object}  map[string]interface{}  "dates"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/options/dates [get]
// @Security     BearerAuth
func (h *Handler) dateOptions(c *gin.Context) {
	count := defaultDateOptionCount
	if qs := c.Query("count"); qs != "" {
		if v, err := strconv.Atoi(qs); err == nil && v > 0 && v <= maxDateOptionCount {
			count = v
		}
	}
	dates := timeutil.GenerateDateOptions(count, c.Query("locale"), time.Now())
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// @Summary      Preview a duration input
// @Description  Validates free-text duration input and returns the parsed fields, total minutes, and long/short previews
// @Tags         options
// @Produce      json
// @Param        input  query  string  true  "Free-text duration"  example(2h30m)
// @Success      200  {object}  map[string]interface{}  "valid, duration, minutes, long, short"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/options/duration [get]
// @Security     BearerAuth
func (h *Handler) previewDuration(c *gin.Context) {
	input := c.Query("input")
	d := timeutil.ParseDurationInput(input)
	if d == nil {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"valid":    true,
		"duration": d,
		"minutes":  timeutil.DurationToMinutes(*d),
		"long":     timeutil.FormatDuration(d.Days, d.Hours, d.Minutes),
		"short":    timeutil.FormatDurationShort(d.Days, d.Hours, d.Minutes),
	})
}

// @Summary      Last used duration
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "preference or null"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/preferences/duration [get]
// @Security     BearerAuth
func (h *Handler) getDurationPreference(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}
	p, err := h.services.Preferences.LastUsed(c.Request.Context(), userID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load preference", "pref_load_failed", err, "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"preference": p})
}

// @Summary      Save last used duration
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/preferences/duration [put]
// @Security     BearerAuth
func (h *Handler) putDurationPreference(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}
	var req struct {
		Minutes int `json:"minutes" binding:"required"`
	}
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	p, err := h.services.Preferences.SaveLastUsed(c.Request.Context(), userID, req.Minutes)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMinutes) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to save preference", "pref_save_failed", err, "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"preference": p})
}
