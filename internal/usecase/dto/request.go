package dto

import "time"

// ResolveRequest identifies an entity by type tag and code, optionally
// narrowed by a country code for sub-national types.
type ResolveRequest struct {
	Type string `json:"type" validate:"required,len=2,lowercase"`
	Code string `json:"code" validate:"required,max=10"`
	Aux  string `json:"aux,omitempty" validate:"omitempty,max=10"`
}

// SearchRequest is a single-term search, optionally restricted to a type.
type SearchRequest struct {
	Query string `json:"query" validate:"required,min=1,max=100"`
	Type  string `json:"type,omitempty" validate:"omitempty,len=2,lowercase"`
	Limit int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
}

// AdvancedSearchRequest unions the match sets of several terms.
type AdvancedSearchRequest struct {
	Terms []string `json:"terms" validate:"required,min=1,max=10,dive,max=100"`
	Type  string   `json:"type,omitempty" validate:"omitempty,len=2,lowercase"`
	Limit int      `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
}

// CreateTravelLogRequest records a visit. A nil arrival defaults to now and
// a zero rating to the default rating.
type CreateTravelLogRequest struct {
	EntityID int64      `json:"entity_id" validate:"required,min=1"`
	Arrival  *time.Time `json:"arrival,omitempty"`
	Rating   int        `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Notes    string     `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// UpdateNotesRequest replaces the notes of a travel log entry.
type UpdateNotesRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}

// CreateBucketListRequest creates an entity collection.
type CreateBucketListRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
	IsPublic    bool   `json:"is_public"`
}

// AddBucketEntitiesRequest attaches entities to a bucket list.
type AddBucketEntitiesRequest struct {
	EntityIDs []int64 `json:"entity_ids" validate:"required,min=1,max=100,dive,min=1"`
}

// SetAccessRequest changes a profile's visibility level.
type SetAccessRequest struct {
	Access string `json:"access" validate:"required,oneof=PUB PRI PRO"`
}

// RefreshFlagRequest points an entity's flag at a new upstream image.
type RefreshFlagRequest struct {
	SourceURL string `json:"source_url" validate:"required,url,max=500"`
}
