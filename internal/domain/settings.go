package domain

import "time"

// SettingsID is the primary key of the single timeline_settings row.
const SettingsID = "default"

// TimelineSettings is the singleton display date range. Absence is valid;
// the client falls back to a default window around today.
type TimelineSettings struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}
