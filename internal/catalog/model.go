package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// EventType classifies a single interaction with a perfume.
type EventType string

const (
	EventSmell EventType = "smell"
	EventSkin  EventType = "skin"
	EventBuy   EventType = "buy"
	EventSell  EventType = "sell"
)

// EventTypes lists the supported event types in form order.
var EventTypes = []EventType{EventSmell, EventSkin, EventBuy, EventSell}

// KnownEventType reports whether the value is one of the supported event types.
func KnownEventType(value string) bool {
	switch EventType(strings.TrimSpace(strings.ToLower(value))) {
	case EventSmell, EventSkin, EventBuy, EventSell:
		return true
	}
	return false
}

// Event records one acquisition, disposal or test action against a perfume.
// Events are append-only; they change only through an explicit user edit.
type Event struct {
	ID             string    `json:"id"`
	PerfumeID      string    `json:"perfume_id"`
	Type           EventType `json:"event_type"`
	Timestamp      string    `json:"timestamp"`
	EventDate      string    `json:"event_date,omitempty"`
	Location       string    `json:"location,omitempty"`
	MLDelta        *float64  `json:"ml_delta,omitempty"`
	Price          *float64  `json:"price,omitempty"`
	PurchaseTypeID string    `json:"purchase_type_id,omitempty"`
	Note           string    `json:"note,omitempty"`
}

// Note is a titled free-text annotation attached to a perfume.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"`
}

// QuickNoteTitles are offered as one-click titles when creating a note.
var QuickNoteTitles = []string{"My Notes", "Review"}

// Link is a labelled URL attached to a perfume.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// VoteSet groups the six Fragrantica-aligned vote blocks. Each block maps an
// option key to its raw vote count.
type VoteSet struct {
	Rating     map[string]int `json:"rating_votes,omitempty"`
	SeasonTime map[string]int `json:"season_time_votes,omitempty"`
	Longevity  map[string]int `json:"longevity_votes,omitempty"`
	Sillage    map[string]int `json:"sillage_votes,omitempty"`
	Gender     map[string]int `json:"gender_votes,omitempty"`
	Value      map[string]int `json:"value_votes,omitempty"`
}

// IsZero reports whether no block carries a single vote.
func (v VoteSet) IsZero() bool {
	for _, block := range v.Blocks() {
		for _, count := range block.Votes {
			if count > 0 {
				return false
			}
		}
	}
	return true
}

// Block pairs a vote map with its option list and display metadata.
type Block struct {
	Key     string
	Label   string
	Options []string
	Votes   map[string]int
}

// Blocks returns the six vote blocks in display order.
func (v VoteSet) Blocks() []Block {
	return []Block{
		{Key: "rating", Label: "Rating", Options: RatingOptions, Votes: v.Rating},
		{Key: "season_time", Label: "When to Wear", Options: SeasonTimeOptions, Votes: v.SeasonTime},
		{Key: "longevity", Label: "Longevity", Options: LongevityOptions, Votes: v.Longevity},
		{Key: "sillage", Label: "Sillage", Options: SillageOptions, Votes: v.Sillage},
		{Key: "gender", Label: "Gender", Options: GenderOptions, Votes: v.Gender},
		{Key: "value", Label: "Price Value", Options: ValueOptions, Votes: v.Value},
	}
}

// Merge copies every non-empty block of from over the corresponding block,
// leaving blocks absent in from untouched. Used when importing a page dump
// that carries only some of the six sections.
func (v *VoteSet) Merge(from VoteSet) {
	if len(from.Rating) > 0 {
		v.Rating = from.Rating
	}
	if len(from.SeasonTime) > 0 {
		v.SeasonTime = from.SeasonTime
	}
	if len(from.Longevity) > 0 {
		v.Longevity = from.Longevity
	}
	if len(from.Sillage) > 0 {
		v.Sillage = from.Sillage
	}
	if len(from.Gender) > 0 {
		v.Gender = from.Gender
	}
	if len(from.Value) > 0 {
		v.Value = from.Value
	}
}

// BlockByKey returns a pointer to the vote map for the given block key,
// allocating the map when absent so callers can record votes directly.
func (v *VoteSet) BlockByKey(key string) (map[string]int, bool) {
	var target *map[string]int
	switch key {
	case "rating":
		target = &v.Rating
	case "season_time":
		target = &v.SeasonTime
	case "longevity":
		target = &v.Longevity
	case "sillage":
		target = &v.Sillage
	case "gender":
		target = &v.Gender
	case "value":
		target = &v.Value
	default:
		return nil, false
	}
	if *target == nil {
		*target = map[string]int{}
	}
	return *target, true
}

// Perfume is the central record. All categorical attributes reference the
// library's lookup tables by identifier rather than holding display strings.
type Perfume struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	BrandID         string   `json:"brand_id,omitempty"`
	ConcentrationID string   `json:"concentration_id,omitempty"`
	LocationIDs     []string `json:"location_ids,omitempty"`
	TagIDs          []string `json:"tag_ids,omitempty"`
	CreatedAt       int64    `json:"created_at"`
	UpdatedAt       int64    `json:"updated_at"`
	Events          []Event  `json:"events"`
	Notes           []Note   `json:"notes,omitempty"`
	Links           []Link   `json:"links,omitempty"`
	Fragrantica     VoteSet  `json:"fragrantica,omitempty"`
	MyVotes         VoteSet  `json:"my_votes,omitempty"`
}

// NewID produces an opaque generated identifier.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewPerfume builds a perfume with a fresh identifier and timestamps.
func NewPerfume(name string) *Perfume {
	now := time.Now().Unix()
	return &Perfume{
		ID:        NewID(),
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewEvent builds an event for the given perfume with the system timestamp set.
func NewEvent(perfumeID string, kind EventType) Event {
	return Event{
		ID:        NewID(),
		PerfumeID: perfumeID,
		Type:      kind,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Touch refreshes the perfume's update timestamp.
func (p *Perfume) Touch() {
	p.UpdatedAt = time.Now().Unix()
}

// EventByID returns the index of the event with the given identifier, or -1.
func (p *Perfume) EventByID(id string) int {
	for i := range p.Events {
		if p.Events[i].ID == id {
			return i
		}
	}
	return -1
}

// NoteByID returns the index of the note with the given identifier, or -1.
func (p *Perfume) NoteByID(id string) int {
	for i := range p.Notes {
		if p.Notes[i].ID == id {
			return i
		}
	}
	return -1
}

// DisplayLabel converts an internal option key to its display form.
func DisplayLabel(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}
