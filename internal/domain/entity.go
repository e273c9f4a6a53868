package domain

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	googleMapsURL       = "http://maps.google.com/maps?q=%s"
	googleMapsLatLonURL = "http://maps.google.com/maps?q=%s,+%s&iwloc=A&z=10"
	wikipediaURL        = "http://en.wikipedia.org/wiki/Special:Search?search=%s&go=Go"
	worldHeritageURL    = "http://whc.unesco.org/en/list/%s"
)

// EntityType is immutable reference data discriminating entity categories.
// Deleting a type still referenced by entities is rejected at the schema
// level.
type EntityType struct {
	ID    int64  `json:"id" db:"id"`
	Abbr  string `json:"abbr" db:"abbr"`
	Title string `json:"title" db:"title"`
}

// Classification is a type-scoped sub-category (e.g. city classifications).
type Classification struct {
	ID     int64  `json:"id" db:"id"`
	TypeID int64  `json:"type_id" db:"type_id"`
	Title  string `json:"title" db:"title"`
}

// Flag is a display asset. IsLocked prevents update-from-URL from
// overwriting a curated source; a locked flag forces a fresh row instead.
type Flag struct {
	ID       int64  `json:"id" db:"id"`
	Source   string `json:"source" db:"source"`
	SVG      string `json:"svg,omitempty" db:"svg"`
	IsLocked bool   `json:"is_locked" db:"is_locked"`
	Emoji    string `json:"emoji,omitempty" db:"emoji"`
}

// ImageURL prefers the stored SVG over the upstream source.
func (f *Flag) ImageURL() string {
	if f.SVG != "" {
		return f.SVG
	}
	return f.Source
}

// Entity is a node in the geographic hierarchy. The four self-references
// (capital, state, country, continent) are weak: deleting the target nils
// the pointer rather than cascading. Which combinations are populated
// depends on the entity's own type; that invariant is documented by the
// registry tables, not enforced on write.
type Entity struct {
	ID       int64               `json:"id" db:"id"`
	TypeID   int64               `json:"-" db:"type_id"`
	Code     string              `json:"code" db:"code"`
	AltCode  string              `json:"alt_code,omitempty" db:"alt_code"`
	Name     string              `json:"name" db:"name"`
	FullName string              `json:"full_name" db:"full_name"`
	Locality string              `json:"locality,omitempty" db:"locality"`
	Lat      decimal.NullDecimal `json:"lat,omitempty" db:"lat"`
	Lon      decimal.NullDecimal `json:"lon,omitempty" db:"lon"`

	ClassificationID *int64 `json:"-" db:"classification_id"`
	FlagID           *int64 `json:"-" db:"flag_id"`
	CapitalID        *int64 `json:"-" db:"capital_id"`
	StateID          *int64 `json:"-" db:"state_id"`
	CountryID        *int64 `json:"-" db:"country_id"`
	ContinentID      *int64 `json:"-" db:"continent_id"`

	TZ          string    `json:"tz,omitempty" db:"tz"`
	Description string    `json:"description,omitempty" db:"description"`
	Updated     time.Time `json:"updated" db:"updated"`

	// Eager-loaded relations; nil unless the query's related set included
	// them.
	Type           *EntityType     `json:"type,omitempty"`
	Flag           *Flag           `json:"flag,omitempty"`
	Classification *Classification `json:"classification,omitempty"`
	Capital        *Entity         `json:"capital,omitempty"`
	State          *Entity         `json:"state,omitempty"`
	Country        *Entity         `json:"country,omitempty"`
	Continent      *Entity         `json:"continent,omitempty"`
	Info           *EntityInfo     `json:"info,omitempty"`

	// Derived fields are computed once per in-memory read and never
	// persisted; a fresh row read starts clean.
	timezone string
	codeURL  string
}

// TypeAbbr returns the type tag, or "" when the type relation was not
// loaded.
func (e *Entity) TypeAbbr() string {
	if e.Type == nil {
		return ""
	}
	return e.Type.Abbr
}

// Timezone resolves the display timezone through the fallback chain:
// own tz, then the state's resolved tz, then the country's, then UTC.
// Each level recurses, so a state with no tz of its own still falls through
// to its own country. A present state settles the chain even when it
// resolves to UTC; the entity's country is only consulted when there is no
// state. Memoized for the entity's in-memory lifetime.
func (e *Entity) Timezone() string {
	if e.timezone == "" {
		e.timezone = e.resolveTimezone()
	}
	return e.timezone
}

func (e *Entity) resolveTimezone() string {
	if e.TZ != "" {
		return e.TZ
	}
	if e.State != nil {
		return e.State.Timezone()
	}
	if e.Country != nil {
		return e.Country.Timezone()
	}
	return "UTC"
}

// CodeURLFragment is the disambiguation-safe code used in external
// identifiers. Sub-national types carry their country code as a prefix
// ("US-CA"); entities without a code fall back to their numeric id.
func (e *Entity) CodeURLFragment() string {
	if e.codeURL == "" {
		e.codeURL = e.buildCodeURLFragment()
	}
	return e.codeURL
}

func (e *Entity) buildCodeURLFragment() string {
	code := e.Code
	if code == "" {
		code = strconv.FormatInt(e.ID, 10)
	}
	abbr := e.TypeAbbr()
	if (abbr == TypeState || abbr == TypeHeritageSite) && e.Country != nil {
		return e.Country.Code + "-" + code
	}
	return code
}

// DescriptiveName appends the state or country to a city's name.
func (e *Entity) DescriptiveName() string {
	if e.TypeAbbr() != TypeCity {
		return e.Name
	}
	parent := e.State
	if parent == nil {
		parent = e.Country
	}
	if parent == nil {
		return e.Name
	}
	return fmt.Sprintf("%s, %s", e.Name, parent.Name)
}

// CategoryDetail prefers the classification title over the type title.
func (e *Entity) CategoryDetail() string {
	if e.Classification != nil {
		return e.Classification.Title
	}
	if e.Type != nil {
		return e.Type.Title
	}
	return ""
}

// GetContinent walks to the continent directly or through the country.
func (e *Entity) GetContinent() *Entity {
	if e.Continent != nil {
		return e.Continent
	}
	if e.Country != nil {
		return e.Country.Continent
	}
	return nil
}

// HasLatLon reports whether both coordinates are set.
func (e *Entity) HasLatLon() bool {
	return e.Lat.Valid && e.Lon.Valid
}

// LatLonStr renders "lat,lon" or "" when unset.
func (e *Entity) LatLonStr() string {
	if !e.HasLatLon() {
		return ""
	}
	return fmt.Sprintf("%s,%s", e.Lat.Decimal.String(), e.Lon.Decimal.String())
}

// LatLonDisplay renders the human-facing coordinate string.
func (e *Entity) LatLonDisplay() string {
	if !e.HasLatLon() {
		return ""
	}
	return fmt.Sprintf("%s° Lat, %s° Lon", e.Lat.Decimal.String(), e.Lon.Decimal.String())
}

// GoogleMapsURL links to the coordinates when set, else a name search.
func (e *Entity) GoogleMapsURL() string {
	if e.HasLatLon() {
		return fmt.Sprintf(googleMapsLatLonURL, e.Lat.Decimal.String(), e.Lon.Decimal.String())
	}
	return fmt.Sprintf(googleMapsURL, url.QueryEscape(e.Name))
}

// Extern is an external reference link resolved per entity type.
type Extern struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ExternLink picks the external resource for the entity: the UNESCO listing
// for heritage sites, a Wikipedia search for everything else.
func (e *Entity) ExternLink() Extern {
	if e.TypeAbbr() == TypeHeritageSite {
		return Extern{
			Name: "UNESCO",
			URL:  fmt.Sprintf(worldHeritageURL, e.Code),
		}
	}
	return Extern{
		Name: "Wikipedia",
		URL:  fmt.Sprintf(wikipediaURL, url.QueryEscape(e.FullName)),
	}
}
