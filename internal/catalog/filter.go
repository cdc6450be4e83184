package catalog

// FragranticaSignalThreshold is the minimum Fragrantica vote count for an
// option to count as a signal in categorical filters. Personal votes count
// from a single vote.
const FragranticaSignalThreshold = 10

// RangeFilter restricts a derived score to [Min, Max]. In include mode
// perfumes without data are dropped; in exclude mode the range is inverted
// and perfumes without data pass.
type RangeFilter struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Exclude bool    `json:"exclude"`
}

// Active reports whether the range deviates from the pass-through default.
func (r RangeFilter) Active(cap float64) bool {
	return r.Min > 0 || (r.Max > 0 && r.Max < cap) || r.Exclude
}

func (r RangeFilter) match(score float64) bool {
	hasData := score > 0
	inRange := score >= r.Min && score <= r.Max
	if r.Exclude {
		return !(hasData && inRange)
	}
	return hasData && inRange
}

// Filter is a conjunction of independent predicates over the collection.
// Every field is optional; a zero field passes all perfumes.
type Filter struct {
	BrandIDs         []string    `json:"brand_ids,omitempty"`
	ConcentrationIDs []string    `json:"concentration_ids,omitempty"`
	LocationIDs      []string    `json:"location_ids,omitempty"`
	TagIDs           []string    `json:"tag_ids,omitempty"`
	TagLogic         string      `json:"tag_logic,omitempty"` // "or" (default) or "and"
	States           []string    `json:"states,omitempty"`    // owned, tested, wishlist
	Seasons          []string    `json:"seasons,omitempty"`
	Times            []string    `json:"times,omitempty"`
	Genders          []string    `json:"genders,omitempty"`
	Rating           RangeFilter `json:"rating"`
	Longevity        RangeFilter `json:"longevity"`
	Sillage          RangeFilter `json:"sillage"`
	Value            RangeFilter `json:"value"`
	HasMyVotes       bool        `json:"has_my_votes,omitempty"`
	HasFragrantica   bool        `json:"has_fragrantica,omitempty"`
}

// DefaultFilter returns the pass-through configuration with range caps set.
func DefaultFilter() Filter {
	return Filter{
		TagLogic:  "or",
		Rating:    RangeFilter{Max: RatingMax},
		Longevity: RangeFilter{Max: LongevityMax},
		Sillage:   RangeFilter{Max: SillageMax},
		Value:     RangeFilter{Max: ValueMax},
	}
}

// Active reports whether any predicate is engaged.
func (f Filter) Active() bool {
	return len(f.BrandIDs) > 0 || len(f.ConcentrationIDs) > 0 ||
		len(f.LocationIDs) > 0 || len(f.TagIDs) > 0 ||
		len(f.States) > 0 || len(f.Seasons) > 0 || len(f.Times) > 0 ||
		len(f.Genders) > 0 ||
		f.Rating.Active(RatingMax) || f.Longevity.Active(LongevityMax) ||
		f.Sillage.Active(SillageMax) || f.Value.Active(ValueMax) ||
		f.HasMyVotes || f.HasFragrantica
}

// Apply filters the perfume list, preserving order. Applying the same filter
// twice yields the same result as applying it once.
func (f Filter) Apply(perfumes []*Perfume) []*Perfume {
	out := make([]*Perfume, 0, len(perfumes))
	for _, p := range perfumes {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Match evaluates every predicate against one perfume; predicates combine
// with logical AND.
func (f Filter) Match(p *Perfume) bool {
	if len(f.BrandIDs) > 0 && !containsString(f.BrandIDs, p.BrandID) {
		return false
	}
	if len(f.ConcentrationIDs) > 0 && !containsString(f.ConcentrationIDs, p.ConcentrationID) {
		return false
	}
	if len(f.LocationIDs) > 0 && !intersects(f.LocationIDs, p.LocationIDs) {
		return false
	}
	if len(f.TagIDs) > 0 {
		if f.TagLogic == "and" {
			for _, want := range f.TagIDs {
				if !containsString(p.TagIDs, want) {
					return false
				}
			}
		} else if !intersects(f.TagIDs, p.TagIDs) {
			return false
		}
	}
	if len(f.States) > 0 && !f.matchState(p) {
		return false
	}
	if len(f.Seasons) > 0 || len(f.Times) > 0 {
		if !f.matchSeasonTime(p) {
			return false
		}
	}
	if f.Rating.Active(RatingMax) && !f.Rating.match(WeightedScore(p.Fragrantica.Rating, RatingOptions)) {
		return false
	}
	if f.Longevity.Active(LongevityMax) && !f.Longevity.match(WeightedScore(p.Fragrantica.Longevity, LongevityOptions)) {
		return false
	}
	if f.Sillage.Active(SillageMax) && !f.Sillage.match(WeightedScore(p.Fragrantica.Sillage, SillageOptions)) {
		return false
	}
	if f.Value.Active(ValueMax) && !f.Value.match(WeightedScore(p.Fragrantica.Value, ValueOptions)) {
		return false
	}
	if len(f.Genders) > 0 && !f.matchGender(p) {
		return false
	}
	if f.HasMyVotes && p.MyVotes.IsZero() {
		return false
	}
	if f.HasFragrantica && p.Fragrantica.IsZero() {
		return false
	}
	return true
}

func (f Filter) matchState(p *Perfume) bool {
	d := Derive(p)
	for _, state := range f.States {
		switch state {
		case "owned":
			if d.OwnedML > 0 || d.Ownership == Owned {
				return true
			}
		case "tested":
			if d.Tested {
				return true
			}
		case "wishlist":
			if d.Ownership == Wishlist && !d.Tested {
				return true
			}
		}
	}
	return false
}

func (f Filter) matchSeasonTime(p *Perfume) bool {
	wanted := append(append([]string{}, f.Seasons...), f.Times...)
	for _, key := range wanted {
		if p.Fragrantica.SeasonTime[key] >= FragranticaSignalThreshold {
			return true
		}
		if p.MyVotes.SeasonTime[key] > 0 {
			return true
		}
	}
	return false
}

func (f Filter) matchGender(p *Perfume) bool {
	for _, key := range f.Genders {
		if p.Fragrantica.Gender[key] >= FragranticaSignalThreshold {
			return true
		}
		if p.MyVotes.Gender[key] > 0 {
			return true
		}
	}
	return false
}

func intersects(wanted, have []string) bool {
	for _, w := range wanted {
		if containsString(have, w) {
			return true
		}
	}
	return false
}
