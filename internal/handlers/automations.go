package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"automation_snooze/internal/service"
)

// @Summary      List automations
// @Description  Free-text filter plus optional grouping; items carrying the exclude marker label are hidden unless an include marker narrows the list first
// @Tags         automations
// @Produce      json
// @Param        q         query  string  false  "Case-insensitive substring match on name or id"
// @Param        group_by  query  string  false  "Grouping key"  Enums(area,label,category)
// @Param        locale    query  string  false  "Locale for display labels"
// @Success      200  {object}  map[string]interface{}  "groups"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/automations [get]
// @Security     BearerAuth
func (h *Handler) listAutomations(c *gin.Context) {
	groups, err := h.services.Automations.List(c.Request.Context(), service.ListParams{
		Query:   c.Query("q"),
		GroupBy: c.Query("group_by"),
		Locale:  c.Query("locale"),
	})
	if err != nil {
		if errors.Is(err, service.ErrUnknownGroupKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusBadGateway, "failed to load automations", "automations_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// @Summary      Automation group counts
// @Description  Distinct area/label/category counts across the full snapshot
// @Tags         automations
// @Produce      json
// @Success      200  {object}  service.GroupCounts
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/automations/counts [get]
// @Security     BearerAuth
func (h *Handler) automationCounts(c *gin.Context) {
	counts, err := h.services.Automations.Counts(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusBadGateway, "failed to load automations", "automations_counts_failed", err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
