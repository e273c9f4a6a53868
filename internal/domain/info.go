package domain

import (
	"strings"

	"github.com/travelog-service/internal/pkg/errors"
)

// kmSqToMiSq converts km² to mi².
const kmSqToMiSq = 0.386102

// Currency is reference data keyed by ISO code.
type Currency struct {
	ISO          string `json:"iso" db:"iso"`
	Name         string `json:"name" db:"name"`
	Fraction     string `json:"fraction,omitempty" db:"fraction"`
	FractionName string `json:"fraction_name,omitempty" db:"fraction_name"`
	Sign         string `json:"sign,omitempty" db:"sign"`
	AltSign      string `json:"alt_sign,omitempty" db:"alt_sign"`
}

type Language struct {
	ID      int64  `json:"id" db:"id"`
	ISO6391 string `json:"iso639_1,omitempty" db:"iso639_1"`
	ISO6392 string `json:"iso639_2,omitempty" db:"iso639_2"`
	ISO6393 string `json:"iso639_3,omitempty" db:"iso639_3"`
	Name    string `json:"name" db:"name"`
}

type Region struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	UNCode   string `json:"un_code" db:"un_code"`
	ParentID *int64 `json:"parent_id,omitempty" db:"parent_id"`
}

// ElectricalSpec is the parsed form of the "volts/hertz/plug,plug" string.
type ElectricalSpec struct {
	Volts string   `json:"volts,omitempty"`
	Hertz string   `json:"hertz,omitempty"`
	Plugs []string `json:"plugs,omitempty"`
}

// EntityInfo enriches a country-type entity one-to-one.
type EntityInfo struct {
	ID            int64  `json:"id" db:"id"`
	EntityID      int64  `json:"-" db:"entity_id"`
	ISO3          string `json:"iso3,omitempty" db:"iso3"`
	CurrencyISO   *string `json:"-" db:"currency_iso"`
	Denom         string `json:"denom,omitempty" db:"denom"`
	Denoms        string `json:"denoms,omitempty" db:"denoms"`
	LanguageCodes string `json:"language_codes,omitempty" db:"language_codes"`
	Phone         string `json:"phone,omitempty" db:"phone"`
	Electrical    string `json:"electrical,omitempty" db:"electrical"`
	PostalCode    string `json:"postal_code,omitempty" db:"postal_code"`
	TLD           string `json:"tld,omitempty" db:"tld"`
	Population    *int64 `json:"population,omitempty" db:"population"`
	Area          *int64 `json:"area,omitempty" db:"area"`
	RegionID      *int64 `json:"-" db:"region_id"`

	Currency  *Currency   `json:"currency,omitempty"`
	Region    *Region     `json:"region,omitempty"`
	Languages []*Language `json:"languages,omitempty"`
	Neighbors []*Entity   `json:"neighbors,omitempty"`
}

// ElectricalInfo parses the stored electrical string. An empty string yields
// an empty record; anything but three slash-separated segments is a data
// error, since seed data is assumed well-formed.
func (i *EntityInfo) ElectricalInfo() (ElectricalSpec, error) {
	if i.Electrical == "" {
		return ElectricalSpec{}, nil
	}

	parts := strings.Split(i.Electrical, "/")
	if len(parts) != 3 {
		return ElectricalSpec{}, errors.ErrMalformedElectrical.WithDetails(map[string]interface{}{
			"electrical": i.Electrical,
		})
	}

	return ElectricalSpec{
		Volts: parts[0],
		Hertz: parts[1],
		Plugs: strings.Split(parts[2], ","),
	}, nil
}

// SquareMiles converts the km² area, truncating to an integer. A nil area
// propagates as nil, never as zero.
func (i *EntityInfo) SquareMiles() *int64 {
	if i.Area == nil {
		return nil
	}
	mi := int64(float64(*i.Area) * kmSqToMiSq)
	return &mi
}

// LanguageNames joins loaded language names for display.
func (i *EntityInfo) LanguageNames() string {
	if len(i.Languages) == 0 {
		return "Unknown"
	}
	names := make([]string, 0, len(i.Languages))
	for _, lang := range i.Languages {
		names = append(names, lang.Name)
	}
	return strings.Join(names, ", ")
}
