package dto

import (
	"time"

	"github.com/travelog-service/internal/domain"
)

// ResolveResponse carries the resolution outcome: exactly one of Entity or
// Candidates is set. An ambiguous code is a success with the candidate list,
// not an error.
type ResolveResponse struct {
	Entity     *EntityDTO   `json:"entity,omitempty"`
	Candidates []*EntityDTO `json:"candidates,omitempty"`
	Count      int          `json:"count"`
}

// SearchResponse lists search hits.
type SearchResponse struct {
	Results []*EntityDTO `json:"results"`
	Total   int          `json:"total"`
}

// EntityListResponse lists every entity of one type.
type EntityListResponse struct {
	Type     string       `json:"type"`
	Title    string       `json:"title"`
	Entities []*EntityDTO `json:"entities"`
	Total    int          `json:"total"`
}

// RelatedTypesResponse groups an entity's relations by type.
type RelatedTypesResponse struct {
	Counts []RelatedTypeDTO `json:"counts"`
}

// TravelLogDTO renders one visit record.
type TravelLogDTO struct {
	ID       int64             `json:"id"`
	Arrival  time.Time         `json:"arrival"`
	Rating   int               `json:"rating"`
	Notes    string            `json:"notes,omitempty"`
	EntityID int64             `json:"entity_id"`
	Entity   *EntitySummaryDTO `json:"entity,omitempty"`
}

// ConvertTravelLog renders a visit record.
func ConvertTravelLog(log *domain.TravelLog) *TravelLogDTO {
	return &TravelLogDTO{
		ID:       log.ID,
		Arrival:  log.Arrival,
		Rating:   log.Rating,
		Notes:    log.Notes,
		EntityID: log.EntityID,
		Entity:   ConvertEntitySummary(log.Entity),
	}
}

// TravelLogListResponse lists a user's visits newest-first.
type TravelLogListResponse struct {
	Logs  []*TravelLogDTO `json:"logs"`
	Total int             `json:"total"`
}

// ChecklistResponse maps entity id to visit count for one user.
type ChecklistResponse struct {
	Visited map[int64]int `json:"visited"`
	Total   int           `json:"total"`
}

// BucketListDTO renders list metadata without members.
type BucketListDTO struct {
	ID          int64     `json:"id"`
	OwnerID     *int64    `json:"owner_id,omitempty"`
	Title       string    `json:"title"`
	IsPublic    bool      `json:"is_public"`
	Description string    `json:"description,omitempty"`
	LastUpdate  time.Time `json:"last_update"`
}

// ConvertBucketList renders list metadata.
func ConvertBucketList(list *domain.BucketList) *BucketListDTO {
	return &BucketListDTO{
		ID:          list.ID,
		OwnerID:     list.OwnerID,
		Title:       list.Title,
		IsPublic:    list.IsPublic,
		Description: list.Description,
		LastUpdate:  list.LastUpdate,
	}
}

// BucketListsResponse lists the bucket lists visible to a viewer.
type BucketListsResponse struct {
	Lists []*BucketListDTO `json:"lists"`
	Total int              `json:"total"`
}

// BucketResultDTO pairs a member entity with the viewer's visit count.
type BucketResultDTO struct {
	Entity     *EntitySummaryDTO `json:"entity"`
	VisitCount int               `json:"visit_count"`
}

// BucketListDetailResponse is a list with its members and the viewer's
// progress tally.
type BucketListDetailResponse struct {
	List    *BucketListDTO    `json:"list"`
	Results []BucketResultDTO `json:"results"`
	Done    int               `json:"done"`
	Total   int               `json:"total"`
}

// ProfileDTO renders a user's visibility settings.
type ProfileDTO struct {
	UserID int64  `json:"user_id"`
	Access string `json:"access"`
}

// ConvertProfile renders a profile.
func ConvertProfile(p *domain.Profile) *ProfileDTO {
	return &ProfileDTO{
		UserID: p.UserID,
		Access: string(p.Access),
	}
}

// ProfilesResponse lists public profiles.
type ProfilesResponse struct {
	Profiles []*ProfileDTO `json:"profiles"`
	Total    int           `json:"total"`
}

// FlagDTO renders a flag row.
type FlagDTO struct {
	ID       int64  `json:"id"`
	URL      string `json:"url"`
	Emoji    string `json:"emoji,omitempty"`
	IsLocked bool   `json:"is_locked"`
}

// ConvertFlag renders a flag.
func ConvertFlag(f *domain.Flag) *FlagDTO {
	return &FlagDTO{
		ID:       f.ID,
		URL:      f.ImageURL(),
		Emoji:    f.Emoji,
		IsLocked: f.IsLocked,
	}
}
