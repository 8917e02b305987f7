package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

type calculationEventCsvRow struct {
	CalculationEventID string `csv:"calculation_event_id"`
	CorrelationID      string `csv:"correlation_id"`
	UserAccountID      string `csv:"user_account_id"`
	EventType          string `csv:"event_type"`
	Payload            string `csv:"payload"`
	CreatedAt          string `csv:"created_at"`
}

// exportCalculationEvents streams one correlation id's audit trail as CSV,
// for compliance review outside the app.
func (h ApiHandler) exportCalculationEvents(c *gin.Context) {
	events, err := h.eventsFromQuery(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	rows := []*calculationEventCsvRow{}
	for _, e := range events {
		rows = append(rows, &calculationEventCsvRow{
			CalculationEventID: e.CalculationEventID.String(),
			CorrelationID:      e.CorrelationID.String(),
			UserAccountID:      e.UserAccountID.String(),
			EventType:          string(e.EventType),
			Payload:            e.Payload,
			CreatedAt:          e.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}

	csvContent, err := gocsv.MarshalString(&rows)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to marshal events csv: %w", err), c)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=calculation_events.csv")
	c.Data(200, "text/csv", []byte(csvContent))
}
