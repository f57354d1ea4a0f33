// Package export writes computed schedules in formats the display layer
// and spreadsheets can consume.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/robdg22/jetshift/core/model"
)

// WriteJSON writes the schedule to w in JSON format.
func WriteJSON(w io.Writer, entries []model.DailyScheduleEntry) error {
	enc := json.NewEncoder(w)
	return enc.Encode(entries)
}

// WriteCSV writes the schedule to w as CSV, one row per day.
func WriteCSV(w io.Writer, entries []model.DailyScheduleEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "day", "bedtime", "wake_time", "stage", "body_clock_offset_minutes"}); err != nil {
		return err
	}
	for _, e := range entries {
		rec := []string{
			e.Date.String(),
			e.DayLabel,
			e.Bedtime.String(),
			e.WakeTime.String(),
			e.Stage.String(),
			strconv.Itoa(e.BodyClockOffsetMinutes),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
