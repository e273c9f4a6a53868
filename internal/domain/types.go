package domain

// Entity type abbreviations. The set is closed: every type-conditional rule
// below is a data table keyed by these tags, with a default arm so an
// unknown tag degrades to the base behavior instead of failing.
const (
	TypeContinent    = "cn"
	TypeCountry      = "co"
	TypeState        = "st"
	TypeCity         = "ct"
	TypeAirport      = "ap"
	TypeHeritageSite = "wh"
	TypeNationalPark = "np"
	TypeLandmark     = "lm"
)

// Relation paths understood by the entity loader. Nested paths are
// dot-separated and resolved head-first.
const (
	RelType             = "type"
	RelFlag             = "flag"
	RelClassification   = "classification"
	RelCountry          = "country"
	RelCountryFlag      = "country.flag"
	RelCountryType      = "country.type"
	RelCountryCapital   = "country.capital"
	RelState            = "state"
	RelStateFlag        = "state.flag"
	RelStateType        = "state.type"
	RelStateCountry     = "state.country"
	RelStateCountryType = "state.country.type"
	RelCapital          = "capital"
	RelCapitalType      = "capital.type"
	RelContinent        = "continent"
	RelContinentType    = "continent.type"
)

var (
	// BaseRelated is the default eager-load set, applied when no
	// type-specific set is registered.
	BaseRelated = []string{
		RelType, RelFlag, RelCountry, RelCountryFlag, RelCountryType,
		RelClassification,
	}
	stateRelated = []string{
		RelState, RelStateFlag, RelStateType, RelStateCountry,
		RelStateCountryType,
	}
	capitalRelated = []string{RelCapital, RelCapitalType}
	commonRelated  = concatRelated(BaseRelated, stateRelated)

	// SearchRelated is applied to all search results regardless of their
	// type, since a result set is heterogeneous.
	SearchRelated = []string{
		RelType, RelFlag, RelClassification, RelCountry, RelCountryFlag,
		RelCountryType,
	}

	// FindRelated is the extra set applied when resolving a bare
	// (type, code) pair, where the hit may be a country or continent.
	FindRelated = []string{
		RelType, RelFlag, RelContinent, RelContinentType, RelCapital,
		RelCapitalType,
	}

	relatedByType = map[string][]string{
		TypeCountry:      concatRelated(BaseRelated, capitalRelated, []string{RelContinent}),
		TypeState:        concatRelated(BaseRelated, capitalRelated, []string{RelCountryCapital}),
		TypeCity:         commonRelated,
		TypeAirport:      commonRelated,
		TypeHeritageSite: commonRelated,
		TypeNationalPark: commonRelated,
		TypeLandmark:     commonRelated,
	}
)

// RelatedFor returns the eager-load set for a type abbreviation. Unlisted
// types get the base set.
func RelatedFor(abbr string) []string {
	if rels, ok := relatedByType[abbr]; ok {
		return rels
	}
	return BaseRelated
}

// RelatedTypeTitles names the relationship groupings shown to callers.
var RelatedTypeTitles = map[string]string{
	TypeCountry:      "Countries",
	TypeState:        "States, provinces, territories, etc",
	TypeCity:         "Cities",
	TypeAirport:      "Airports",
	TypeNationalPark: "National Parks",
	TypeLandmark:     "Landmarks",
	TypeHeritageSite: "World Heritage Sites",
}

// reverseKeys maps a type to the self-reference column its dependents point
// back through. Types without an entry have no related-type listing.
var reverseKeys = map[string]string{
	TypeCountry: RelCountry,
	TypeState:   RelState,
}

// ReverseKey reports the reverse-relation field for abbr, if any. Continents
// are handled separately: they are reachable both directly and through a
// country, so a single reverse key cannot express them.
func ReverseKey(abbr string) (string, bool) {
	key, ok := reverseKeys[abbr]
	return key, ok
}

// relationRule resolves which field filters related entities for a given
// (self type, target type) pair: a target-specific override when present,
// otherwise the type-level default. Keeping the exception cases next to the
// general rule is the point of the two-level shape.
type relationRule struct {
	defaultField string
	byTarget     map[string]string
}

var byTypeRules = map[string]relationRule{
	TypeCountry: {defaultField: RelCountry},
	TypeState:   {defaultField: RelState},
	TypeContinent: {
		defaultField: "country.continent",
		byTarget:     map[string]string{TypeCountry: RelContinent},
	},
}

// RelationField returns the filter field for listing entities of targetAbbr
// related to an entity of selfAbbr. The second return is false when selfAbbr
// has no relationship rules at all.
func RelationField(selfAbbr, targetAbbr string) (string, bool) {
	rule, ok := byTypeRules[selfAbbr]
	if !ok {
		return "", false
	}
	if field, ok := rule.byTarget[targetAbbr]; ok {
		return field, true
	}
	return rule.defaultField, true
}

// RelatedTypeCount pairs a type abbreviation with how many entities of that
// type relate to some entity.
type RelatedTypeCount struct {
	Abbr  string `json:"abbr" db:"abbr"`
	Count int    `json:"count" db:"count"`
}

func concatRelated(sets ...[]string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, set := range sets {
		for _, rel := range set {
			if !seen[rel] {
				seen[rel] = true
				out = append(out, rel)
			}
		}
	}
	return out
}
