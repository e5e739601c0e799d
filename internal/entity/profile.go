package entity

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

// Profile is one row per registered user. The primary key is the Telegram
// user id, assigned externally. Coins and blocked are only ever mutated
// through atomic updates in the repository, never read-modify-write here.
type Profile struct {
	ID        int64          `gorm:"primaryKey;column:id" json:"id"`
	Nickname  string         `gorm:"not null;column:nickname" json:"nickname"`
	Age       int            `gorm:"not null;column:age" json:"age"`
	Country   string         `gorm:"column:country" json:"country"`
	City      string         `gorm:"column:city" json:"city"`
	Gender    Gender         `gorm:"column:gender;type:text" json:"gender"`
	Interests pq.StringArray `gorm:"column:interests;type:text[]" json:"interests"`
	PhotoURL  string         `gorm:"column:photo_url" json:"photo_url,omitempty"`
	Coins     int            `gorm:"column:coins;not null;default:10" json:"coins"`
	Blocked   bool           `gorm:"column:blocked;not null;default:false" json:"blocked"`
}

func (Profile) TableName() string { return "profiles" }

// LikeEdge is a directed "wants to match" edge. Inserts are idempotent
// (ON CONFLICT DO NOTHING on the composite key) and edges are never removed.
type LikeEdge struct {
	UserID    int64     `gorm:"column:user_id;primaryKey"`
	TargetID  int64     `gorm:"column:target_id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (LikeEdge) TableName() string { return "like_edges" }

// MatchEdge is derived from two opposing like edges. Both directions are
// written in the same transaction, so the table always holds an even number
// of rows; an odd degree sum means corruption and is surfaced by stats.
type MatchEdge struct {
	UserID    int64     `gorm:"column:user_id;primaryKey"`
	TargetID  int64     `gorm:"column:target_id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (MatchEdge) TableName() string { return "match_edges" }

// CandidateFilter is the selection predicate for next-candidate queries.
// The SQL store translates it to a WHERE clause; the in-memory store
// evaluates Matches directly. Both must agree.
type CandidateFilter struct {
	City       string
	Genders    []Gender
	Interests  []string // empty waives the overlap requirement
	ExcludeIDs []int64
}

func (f CandidateFilter) Matches(p *Profile) bool {
	if p.Blocked {
		return false
	}
	if !strings.EqualFold(p.City, f.City) {
		return false
	}
	genderOK := false
	for _, g := range f.Genders {
		if p.Gender == g {
			genderOK = true
			break
		}
	}
	if !genderOK {
		return false
	}
	for _, id := range f.ExcludeIDs {
		if p.ID == id {
			return false
		}
	}
	if len(f.Interests) == 0 {
		return true
	}
	// Interest tags compare exactly, like the text[] overlap operator in
	// the SQL store. City is the only case-insensitive field.
	for _, want := range f.Interests {
		for _, have := range p.Interests {
			if want == have {
				return true
			}
		}
	}
	return false
}
