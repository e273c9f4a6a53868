package dto

import (
	"time"

	"github.com/travelog-service/internal/domain"
)

// EntitySummaryDTO is the compact entity rendering embedded in relations,
// list rows and log entries.
type EntitySummaryDTO struct {
	ID        int64  `json:"id"`
	Type      string `json:"type,omitempty"`
	Code      string `json:"code,omitempty"`
	CodeURL   string `json:"code_url,omitempty"`
	Name      string `json:"name"`
	FlagURL   string `json:"flag_url,omitempty"`
	FlagEmoji string `json:"flag_emoji,omitempty"`
}

// EntityDTO is the full entity rendering with every derived field resolved.
type EntityDTO struct {
	ID              int64             `json:"id"`
	Type            string            `json:"type"`
	TypeTitle       string            `json:"type_title,omitempty"`
	Code            string            `json:"code,omitempty"`
	CodeURL         string            `json:"code_url"`
	Name            string            `json:"name"`
	FullName        string            `json:"full_name"`
	DescriptiveName string            `json:"descriptive_name"`
	Category        string            `json:"category,omitempty"`
	Locality        string            `json:"locality,omitempty"`
	Lat             string            `json:"lat,omitempty"`
	Lon             string            `json:"lon,omitempty"`
	LatLonDisplay   string            `json:"lat_lon_display,omitempty"`
	Timezone        string            `json:"timezone"`
	FlagURL         string            `json:"flag_url,omitempty"`
	FlagEmoji       string            `json:"flag_emoji,omitempty"`
	MapsURL         string            `json:"maps_url"`
	Extern          domain.Extern     `json:"extern"`
	Capital         *EntitySummaryDTO `json:"capital,omitempty"`
	State           *EntitySummaryDTO `json:"state,omitempty"`
	Country         *EntitySummaryDTO `json:"country,omitempty"`
	Continent       *EntitySummaryDTO `json:"continent,omitempty"`
	Description     string            `json:"description,omitempty"`
	Updated         time.Time         `json:"updated"`
	Info            *EntityInfoDTO    `json:"info,omitempty"`
}

// RelatedTypeDTO is one row of a relationship grouping.
type RelatedTypeDTO struct {
	Abbr  string `json:"abbr"`
	Title string `json:"title"`
	Count int    `json:"count"`
}

// ConvertEntitySummary renders the compact form, or nil for a nil entity.
func ConvertEntitySummary(e *domain.Entity) *EntitySummaryDTO {
	if e == nil {
		return nil
	}
	out := &EntitySummaryDTO{
		ID:      e.ID,
		Type:    e.TypeAbbr(),
		Code:    e.Code,
		CodeURL: e.CodeURLFragment(),
		Name:    e.Name,
	}
	if e.Flag != nil {
		out.FlagURL = e.Flag.ImageURL()
		out.FlagEmoji = e.Flag.Emoji
	}
	return out
}

// ConvertEntity renders the full form.
func ConvertEntity(e *domain.Entity) *EntityDTO {
	out := &EntityDTO{
		ID:              e.ID,
		Type:            e.TypeAbbr(),
		Code:            e.Code,
		CodeURL:         e.CodeURLFragment(),
		Name:            e.Name,
		FullName:        e.FullName,
		DescriptiveName: e.DescriptiveName(),
		Category:        e.CategoryDetail(),
		Locality:        e.Locality,
		Timezone:        e.Timezone(),
		MapsURL:         e.GoogleMapsURL(),
		Extern:          e.ExternLink(),
		Capital:         ConvertEntitySummary(e.Capital),
		State:           ConvertEntitySummary(e.State),
		Country:         ConvertEntitySummary(e.Country),
		Continent:       ConvertEntitySummary(e.GetContinent()),
		Description:     e.Description,
		Updated:         e.Updated,
	}
	if e.Type != nil {
		out.TypeTitle = e.Type.Title
	}
	if e.HasLatLon() {
		out.Lat = e.Lat.Decimal.String()
		out.Lon = e.Lon.Decimal.String()
		out.LatLonDisplay = e.LatLonDisplay()
	}
	if e.Flag != nil {
		out.FlagURL = e.Flag.ImageURL()
		out.FlagEmoji = e.Flag.Emoji
	}
	return out
}

// ConvertEntities renders a result list in order.
func ConvertEntities(entities []*domain.Entity) []*EntityDTO {
	out := make([]*EntityDTO, 0, len(entities))
	for _, e := range entities {
		out = append(out, ConvertEntity(e))
	}
	return out
}
