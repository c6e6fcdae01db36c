package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"automation_snooze/internal/service"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK        = "ok"
	statusSnoozed   = "snoozed"
	statusAdjusted  = "adjusted"
	statusCancelled = "cancelled"

	errCreateSnooze = "failed to snooze automations"
	errListSnoozes  = "failed to load active snoozes"
	errCancelSnooze = "failed to cancel snooze"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// isValidationErr reports whether err is a snooze input validation failure,
// which handlers translate to 400 rather than 500.
func isValidationErr(err error) bool {
	for _, v := range []error{
		service.ErrNoEntities,
		service.ErrInvalidDuration,
		service.ErrInvalidResumeAt,
		service.ErrInvalidDisableAt,
		service.ErrResumeNotFuture,
		service.ErrResumeBeforeDisable,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

// Request DTO for creating a snooze. Duration mode supplies free-text
// duration; schedule mode supplies resume_at (and optionally disable_at).
type snoozeRequest struct {
	EntityIDs []string `json:"entity_ids" binding:"required"`
	Duration  string   `json:"duration,omitempty"`
	ResumeAt  string   `json:"resume_at,omitempty"`
	DisableAt string   `json:"disable_at,omitempty"`
}

// CreateSnoozeRequest is an exported model for Swagger docs of the snooze payload.
type CreateSnoozeRequest struct {
	// Automations to pause
	EntityIDs []string `json:"entity_ids" example:"automation.porch_light"`
	// Free-text duration like "2h30m", "1d", "45m", or bare minutes (duration mode)
	Duration string `json:"duration,omitempty" example:"2h30m"`
	// ISO-8601 resume instant (schedule mode)
	ResumeAt string `json:"resume_at,omitempty" example:"2026-09-01T22:00:00+02:00"`
	// ISO-8601 disable instant; empty disables immediately
	DisableAt string `json:"disable_at,omitempty" example:"2026-09-01T20:00:00+02:00"`
}

type adjustRequest struct {
	EntityID string `json:"entity_id" binding:"required"`
	Duration string `json:"duration" binding:"required"`
}

type groupSnoozeRequest struct {
	AreaID   string `json:"area_id,omitempty"`
	LabelID  string `json:"label_id,omitempty"`
	Duration string `json:"duration" binding:"required"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Snooze automations
// @Description  Duration mode (duration) or schedule mode (resume_at, optional disable_at)
// @Tags         snooze
// @Accept       json
// @Produce      json
// @Param        body  body   CreateSnoozeRequest  true  "Snooze payload"
// @Success      200   {object}  map[string]interface{}  "status, snoozes"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/snooze [post]
// @Security     BearerAuth
func (h *Handler) createSnooze(c *gin.Context) {
	var req snoozeRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	ctx := c.Request.Context()
	created, err := h.services.Snooze.Pause(ctx, service.PauseParams{
		EntityIDs:     req.EntityIDs,
		DurationInput: req.Duration,
		ResumeAt:      req.ResumeAt,
		DisableAt:     req.DisableAt,
	})
	if err != nil {
		if isValidationErr(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateSnooze, "snooze_create_failed", err)
		return
	}

	// Remember the last-used duration for the user's next snooze (best-effort).
	if userID, ok := c.Get("userId"); ok && len(created) > 0 && created[0].DurationMinutes > 0 {
		if id, ok := userID.(int); ok {
			_, _ = h.services.Preferences.SaveLastUsed(ctx, id, created[0].DurationMinutes)
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": statusSnoozed, "snoozes": created})
}

// @Summary      List active snoozes
// @Tags         snooze
// @Produce      json
// @Param        locale  query  string  false  "Locale for the resume label"  example(de)
// @Success      200  {object}  map[string]interface{}  "count, snoozes"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/snooze [get]
// @Security     BearerAuth
func (h *Handler) listSnoozes(c *gin.Context) {
	ctx := c.Request.Context()
	statuses, err := h.services.Monitoring.ActiveSnoozes(ctx, c.Query("locale"))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListSnoozes, "snooze_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(statuses), "snoozes": statuses})
}

// @Summary      Adjust an active snooze
// @Description  Re-bases the resume time to now + the parsed duration
// @Tags         snooze
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/snooze/adjust [post]
// @Security     BearerAuth
func (h *Handler) adjustSnooze(c *gin.Context) {
	var req adjustRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	sn, err := h.services.Snooze.Adjust(c.Request.Context(), req.EntityID, req.Duration)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDuration):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotSnoozed):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, "failed to adjust snooze", "snooze_adjust_failed", err, "entity_id", req.EntityID)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusAdjusted, "snooze": sn})
}

// @Summary      Cancel one snooze
// @Tags         snooze
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/snooze/{entity_id} [delete]
// @Security     BearerAuth
func (h *Handler) cancelSnooze(c *gin.Context) {
	entityID := c.Param("entity_id")
	if err := h.services.Snooze.Cancel(c.Request.Context(), entityID); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCancelSnooze, "snooze_cancel_failed", err, "entity_id", entityID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusCancelled})
}

// @Summary      Cancel every snooze
// @Tags         snooze
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/snooze/cancel_all [post]
// @Security     BearerAuth
func (h *Handler) cancelAllSnoozes(c *gin.Context) {
	if err := h.services.Snooze.CancelAll(c.Request.Context()); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCancelSnooze, "snooze_cancel_all_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusCancelled})
}

// @Summary      Cancel a scheduled snooze
// @Description  Drops a window whose disable time has not arrived yet
// @Tags         snooze
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/snooze/cancel_scheduled [post]
// @Security     BearerAuth
func (h *Handler) cancelScheduledSnooze(c *gin.Context) {
	var req struct {
		EntityID string `json:"entity_id" binding:"required"`
	}
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	if err := h.services.Snooze.CancelScheduled(c.Request.Context(), req.EntityID); err != nil {
		if errors.Is(err, service.ErrNotScheduled) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errCancelSnooze, "snooze_cancel_scheduled_failed", err, "entity_id", req.EntityID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusCancelled})
}

// @Summary      Snooze a whole area
// @Tags         snooze
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/snooze/area [post]
// @Security     BearerAuth
func (h *Handler) snoozeArea(c *gin.Context) {
	var req groupSnoozeRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	if req.AreaID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "area_id is required"})
		return
	}
	d, err := h.services.Snooze.PauseByArea(c.Request.Context(), req.AreaID, req.Duration)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDuration) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateSnooze, "snooze_area_failed", err, "area_id", req.AreaID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusSnoozed, "area_id": req.AreaID, "duration": d})
}

// @Summary      Snooze every automation with a label
// @Tags         snooze
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/snooze/label [post]
// @Security     BearerAuth
func (h *Handler) snoozeLabel(c *gin.Context) {
	var req groupSnoozeRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	if req.LabelID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "label_id is required"})
		return
	}
	d, err := h.services.Snooze.PauseByLabel(c.Request.Context(), req.LabelID, req.Duration)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDuration) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateSnooze, "snooze_label_failed", err, "label_id", req.LabelID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusSnoozed, "label_id": req.LabelID, "duration": d})
}
