package dto

import (
	"github.com/travelog-service/internal/domain"
	"github.com/travelog-service/internal/pkg/traveljson"
)

// HistoryResponse is the typed-JSON export of everywhere a user has been.
// Timestamps, dates, wall-clock times and coordinates use the envelope
// encoding so the export round-trips without losing precision.
type HistoryResponse struct {
	UserID    int64               `json:"user_id"`
	Generated traveljson.DateTime `json:"generated"`
	Entities  []*HistoryEntityDTO `json:"entities"`
	Visits    int                 `json:"visits"`
}

// HistoryEntityDTO is one visited entity with the user's visits to it.
type HistoryEntityDTO struct {
	ID      int64                `json:"id"`
	Type    string               `json:"type"`
	Code    string               `json:"code,omitempty"`
	CodeURL string               `json:"code_url"`
	Name    string               `json:"name"`
	Country string               `json:"country,omitempty"`
	FlagURL string               `json:"flag_url,omitempty"`
	Lat     *traveljson.Decimal  `json:"lat,omitempty"`
	Lon     *traveljson.Decimal  `json:"lon,omitempty"`
	Visits  []HistoryVisitDTO    `json:"visits"`
}

// HistoryVisitDTO is one visit, with the arrival split into its typed parts.
type HistoryVisitDTO struct {
	Arrival traveljson.DateTime `json:"arrival"`
	Date    traveljson.Date     `json:"date"`
	Time    traveljson.Clock    `json:"time"`
	Rating  int                 `json:"rating"`
	Notes   string              `json:"notes,omitempty"`
}

// ConvertHistoryEntity renders one visited entity.
func ConvertHistoryEntity(e *domain.Entity) *HistoryEntityDTO {
	out := &HistoryEntityDTO{
		ID:      e.ID,
		Type:    e.TypeAbbr(),
		Code:    e.Code,
		CodeURL: e.CodeURLFragment(),
		Name:    e.Name,
	}
	if e.Country != nil {
		out.Country = e.Country.Name
		if e.Country.Flag != nil {
			out.FlagURL = e.Country.Flag.ImageURL()
		}
	}
	if e.Flag != nil {
		out.FlagURL = e.Flag.ImageURL()
	}
	if e.HasLatLon() {
		lat := traveljson.NewDecimal(e.Lat.Decimal)
		lon := traveljson.NewDecimal(e.Lon.Decimal)
		out.Lat = &lat
		out.Lon = &lon
	}
	return out
}

// ConvertHistoryVisit renders one visit record.
func ConvertHistoryVisit(log *domain.TravelLog) HistoryVisitDTO {
	arrival := log.Arrival.UTC()
	return HistoryVisitDTO{
		Arrival: traveljson.NewDateTime(arrival),
		Date:    traveljson.NewDate(arrival.Year(), arrival.Month(), arrival.Day()),
		Time:    traveljson.NewClock(arrival.Hour(), arrival.Minute(), arrival.Second()),
		Rating:  log.Rating,
		Notes:   log.Notes,
	}
}
