package catalog

import (
	"fmt"
	"math"
	"strings"
)

// Option lists for the six vote blocks, ordered best-first (or, for gender,
// female-first). Keys align with the Fragrantica vocabulary.
var (
	RatingOptions     = []string{"love", "like", "ok", "dislike", "hate"}
	SeasonTimeOptions = []string{"spring", "summer", "fall", "winter", "day", "night"}
	LongevityOptions  = []string{"eternal", "long", "moderate", "weak", "poor"}
	SillageOptions    = []string{"enormous", "strong", "moderate", "intimate"}
	GenderOptions     = []string{"female", "more_female", "unisex", "more_male", "male"}
	ValueOptions      = []string{"excellent", "good", "fair", "expensive", "overpriced"}

	// SeasonKeys and TimeKeys split the season_time block into its two axes.
	SeasonKeys = []string{"spring", "summer", "fall", "winter"}
	TimeKeys   = []string{"day", "night"}
)

// Score caps per block, used by range filters and UI sliders.
const (
	RatingMax    = 5.0
	LongevityMax = 5.0
	SillageMax   = 4.0
	GenderMax    = 5.0
	ValueMax     = 5.0
)

// LowSampleThreshold marks blocks whose total vote count is too small to be
// a reliable signal.
const LowSampleThreshold = 30

// WeightedScore computes the vote-weighted average for a block. The first
// option carries the highest weight (len(options)) and the last carries 1.
// A block with no votes scores 0, the missing-data sentinel.
func WeightedScore(votes map[string]int, options []string) float64 {
	total := 0
	weighted := 0
	for i, opt := range options {
		count := votes[opt]
		if count < 0 {
			count = 0
		}
		total += count
		weighted += count * (len(options) - i)
	}
	if total == 0 {
		return 0
	}
	return float64(weighted) / float64(total)
}

// SampleSize returns the number of votes backing a block. Season/time blocks
// report the strongest single option instead of the sum.
func SampleSize(votes map[string]int, options []string, byMax bool) int {
	if byMax {
		max := 0
		for _, opt := range options {
			if votes[opt] > max {
				max = votes[opt]
			}
		}
		return max
	}
	total := 0
	for _, opt := range options {
		if votes[opt] > 0 {
			total += votes[opt]
		}
	}
	return total
}

// NormalizeBySum scales each option count to its share of the block total.
func NormalizeBySum(votes map[string]int, options []string) []float64 {
	total := SampleSize(votes, options, false)
	out := make([]float64, len(options))
	if total <= 0 {
		return out
	}
	for i, opt := range options {
		if votes[opt] > 0 {
			out[i] = float64(votes[opt]) / float64(total)
		}
	}
	return out
}

// NormalizeByMax scales each option count against the strongest option.
func NormalizeByMax(votes map[string]int, options []string) []float64 {
	max := SampleSize(votes, options, true)
	out := make([]float64, len(options))
	if max <= 0 {
		return out
	}
	for i, opt := range options {
		if votes[opt] > 0 {
			out[i] = float64(votes[opt]) / float64(max)
		}
	}
	return out
}

// NoDataDash is the display placeholder for blocks without votes.
const NoDataDash = "—"

// ScoreSummary formats a weighted score as a two-decimal string.
func ScoreSummary(votes map[string]int, options []string) string {
	score := WeightedScore(votes, options)
	if score == 0 {
		return NoDataDash
	}
	return fmt.Sprintf("%.2f", score)
}

// NearestOptionSummary maps the weighted score back to the closest option
// label. Used for the gender and price-value blocks.
func NearestOptionSummary(votes map[string]int, options []string) string {
	score := WeightedScore(votes, options)
	if score == 0 {
		return NoDataDash
	}
	idx := len(options) - int(math.Round(score))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(options) {
		idx = len(options) - 1
	}
	return DisplayLabel(options[idx])
}

// SeasonTimeSummary abbreviates the dominant wear occasions: options within
// 60% of the strongest signal are reported, with year-round / "except X" /
// anytime shorthand.
func SeasonTimeSummary(votes map[string]int) string {
	max := SampleSize(votes, SeasonTimeOptions, true)
	if max == 0 {
		return NoDataDash
	}
	threshold := float64(max) * 0.6
	var seasons, times []string
	for _, key := range SeasonKeys {
		if float64(votes[key]) >= threshold {
			seasons = append(seasons, key)
		}
	}
	for _, key := range TimeKeys {
		if float64(votes[key]) >= threshold {
			times = append(times, key)
		}
	}

	var parts []string
	switch len(seasons) {
	case len(SeasonKeys):
		parts = append(parts, "year-round")
	case len(SeasonKeys) - 1:
		for _, key := range SeasonKeys {
			if !containsString(seasons, key) {
				parts = append(parts, "except "+DisplayLabel(key))
				break
			}
		}
	case 0:
	default:
		parts = append(parts, strings.Join(seasons, ", "))
	}
	if len(times) == len(TimeKeys) {
		parts = append(parts, "anytime")
	} else if len(times) > 0 {
		parts = append(parts, strings.Join(times, ", "))
	}
	if len(parts) == 0 {
		return NoDataDash
	}
	return strings.Join(parts, " | ")
}

// BlockSummary renders the display summary for any block key.
func BlockSummary(key string, votes map[string]int) string {
	switch key {
	case "rating":
		return ScoreSummary(votes, RatingOptions)
	case "season_time":
		return SeasonTimeSummary(votes)
	case "longevity":
		return ScoreSummary(votes, LongevityOptions)
	case "sillage":
		return ScoreSummary(votes, SillageOptions)
	case "gender":
		return NearestOptionSummary(votes, GenderOptions)
	case "value":
		return NearestOptionSummary(votes, ValueOptions)
	}
	return NoDataDash
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
