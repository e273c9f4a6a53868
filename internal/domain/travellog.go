package domain

import "time"

// Identity is the opaque user reference handed in by the identity
// collaborator. Zero value means anonymous.
type Identity struct {
	ID            int64
	Authenticated bool
}

// Rating bounds for travel log entries.
const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 3
)

// TravelLog records that a user visited an entity on a given date. Ordered
// newest-first by arrival; "latest" means latest arrival.
type TravelLog struct {
	ID       int64     `json:"id" db:"id"`
	Arrival  time.Time `json:"arrival" db:"arrival"`
	Rating   int       `json:"rating" db:"rating"`
	UserID   int64     `json:"user_id" db:"user_id"`
	Notes    string    `json:"notes,omitempty" db:"notes"`
	EntityID int64     `json:"entity_id" db:"entity_id"`

	Entity *Entity `json:"entity,omitempty"`
}

// BucketList is a named collection of entities to visit. A nil owner means
// an anonymous (seeded) list.
type BucketList struct {
	ID          int64     `json:"id" db:"id"`
	OwnerID     *int64    `json:"owner_id,omitempty" db:"owner_id"`
	Title       string    `json:"title" db:"title"`
	IsPublic    bool      `json:"is_public" db:"is_public"`
	Description string    `json:"description,omitempty" db:"description"`
	LastUpdate  time.Time `json:"last_update" db:"last_update"`

	Entities []*Entity `json:"entities,omitempty"`
}

// VisibleTo applies the visibility rule: public lists to anyone, private
// lists to their owner only.
func (b *BucketList) VisibleTo(user Identity) bool {
	if b.IsPublic {
		return true
	}
	return user.Authenticated && b.OwnerID != nil && *b.OwnerID == user.ID
}

// BucketListResult pairs a list entry with the viewer's visit count.
type BucketListResult struct {
	Entity     *Entity `json:"entity"`
	VisitCount int     `json:"visit_count"`
}

// AccessLevel controls who can see a profile.
type AccessLevel string

const (
	AccessPublic    AccessLevel = "PUB"
	AccessPrivate   AccessLevel = "PRI"
	AccessProtected AccessLevel = "PRO"
)

// Profile is created lazily for every user account; access defaults to
// protected.
type Profile struct {
	ID     int64       `json:"id" db:"id"`
	UserID int64       `json:"user_id" db:"user_id"`
	Access AccessLevel `json:"access" db:"access"`
}

func (p *Profile) IsPublic() bool    { return p.Access == AccessPublic }
func (p *Profile) IsPrivate() bool   { return p.Access == AccessPrivate }
func (p *Profile) IsProtected() bool { return p.Access == AccessProtected }

// VisibleTo: owners always see their own profile; public profiles are open;
// protected profiles require any authenticated viewer.
func (p *Profile) VisibleTo(user Identity) bool {
	if user.Authenticated && user.ID == p.UserID {
		return true
	}
	switch p.Access {
	case AccessPublic:
		return true
	case AccessProtected:
		return user.Authenticated
	default:
		return false
	}
}
