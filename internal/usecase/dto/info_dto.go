package dto

import "github.com/travelog-service/internal/domain"

// EntityInfoDTO renders the country enrichment record.
type EntityInfoDTO struct {
	ISO3       string                 `json:"iso3,omitempty"`
	Currency   *domain.Currency       `json:"currency,omitempty"`
	Region     string                 `json:"region,omitempty"`
	Languages  string                 `json:"languages"`
	Phone      string                 `json:"phone,omitempty"`
	Electrical *domain.ElectricalSpec `json:"electrical,omitempty"`
	PostalCode string                 `json:"postal_code,omitempty"`
	TLD        string                 `json:"tld,omitempty"`
	Population *int64                 `json:"population,omitempty"`
	AreaKmSq   *int64                 `json:"area_km2,omitempty"`
	AreaMiSq   *int64                 `json:"area_mi2,omitempty"`
	Neighbors  []*EntitySummaryDTO    `json:"neighbors,omitempty"`
}

// ConvertEntityInfo renders the enrichment record; a malformed electrical
// spec surfaces as the parse error.
func ConvertEntityInfo(info *domain.EntityInfo) (*EntityInfoDTO, error) {
	if info == nil {
		return nil, nil
	}

	out := &EntityInfoDTO{
		ISO3:       info.ISO3,
		Currency:   info.Currency,
		Languages:  info.LanguageNames(),
		Phone:      info.Phone,
		PostalCode: info.PostalCode,
		TLD:        info.TLD,
		Population: info.Population,
		AreaKmSq:   info.Area,
		AreaMiSq:   info.SquareMiles(),
	}
	if info.Region != nil {
		out.Region = info.Region.Name
	}
	if info.Electrical != "" {
		spec, err := info.ElectricalInfo()
		if err != nil {
			return nil, err
		}
		out.Electrical = &spec
	}
	for _, n := range info.Neighbors {
		out.Neighbors = append(out.Neighbors, ConvertEntitySummary(n))
	}
	return out, nil
}
