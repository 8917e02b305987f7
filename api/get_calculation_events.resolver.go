package api

import (
	"fmt"
	"wealthplan/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h ApiHandler) getCalculationEvents(c *gin.Context) {
	events, err := h.eventsFromQuery(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, events)
}

// eventsFromQuery loads the full audit history for the correlationID query
// parameter, ordered oldest first.
func (h ApiHandler) eventsFromQuery(c *gin.Context) ([]domain.CalculationEvent, error) {
	raw, ok := c.GetQuery("correlationID")
	if !ok {
		return nil, fmt.Errorf("correlationID is required")
	}
	correlationID, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid correlationID %q: %w", raw, err)
	}

	return h.AuditTrailService.ListEvents(correlationID)
}
