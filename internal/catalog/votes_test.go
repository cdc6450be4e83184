package catalog

import (
	"math"
	"testing"
)

func TestWeightedScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		votes   map[string]int
		options []string
		want    float64
	}{
		{"no votes", map[string]int{}, RatingOptions, 0},
		{"nil votes", nil, RatingOptions, 0},
		{"all love", map[string]int{"love": 10}, RatingOptions, 5},
		{"all hate", map[string]int{"hate": 3}, RatingOptions, 1},
		{"split", map[string]int{"love": 1, "hate": 1}, RatingOptions, 3},
		{"weak longevity counts low", map[string]int{"poor": 4}, LongevityOptions, 1},
		{"eternal counts high", map[string]int{"eternal": 4}, LongevityOptions, 5},
		{"sillage cap", map[string]int{"enormous": 2}, SillageOptions, 4},
		{"negative counts ignored", map[string]int{"love": -5, "ok": 2}, RatingOptions, 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := WeightedScore(tt.votes, tt.options)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("WeightedScore() = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestScoreSummary(t *testing.T) {
	t.Parallel()

	if got := ScoreSummary(nil, RatingOptions); got != NoDataDash {
		t.Fatalf("empty block summary = %q, want %q", got, NoDataDash)
	}
	votes := map[string]int{"love": 1, "like": 1}
	if got := ScoreSummary(votes, RatingOptions); got != "4.50" {
		t.Fatalf("ScoreSummary() = %q, want %q", got, "4.50")
	}
}

func TestNearestOptionSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		votes map[string]int
		want  string
	}{
		{"no data", nil, NoDataDash},
		{"all female", map[string]int{"female": 20}, "female"},
		{"all male", map[string]int{"male": 20}, "male"},
		{"balanced is unisex", map[string]int{"female": 5, "male": 5}, "unisex"},
		{"leaning female", map[string]int{"female": 8, "more_female": 8, "unisex": 2}, "more female"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NearestOptionSummary(tt.votes, GenderOptions); got != tt.want {
				t.Fatalf("NearestOptionSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeasonTimeSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		votes map[string]int
		want  string
	}{
		{"no data", nil, NoDataDash},
		{
			"year round anytime",
			map[string]int{"spring": 10, "summer": 10, "fall": 10, "winter": 10, "day": 10, "night": 10},
			"year-round | anytime",
		},
		{
			"except winter",
			map[string]int{"spring": 10, "summer": 10, "fall": 10, "winter": 1},
			"except winter",
		},
		{
			"single season and time",
			map[string]int{"winter": 20, "summer": 2, "night": 19},
			"winter | night",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SeasonTimeSummary(tt.votes); got != tt.want {
				t.Fatalf("SeasonTimeSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	votes := map[string]int{"love": 3, "like": 1}
	bySum := NormalizeBySum(votes, RatingOptions)
	if bySum[0] != 0.75 || bySum[1] != 0.25 {
		t.Fatalf("NormalizeBySum() = %v", bySum)
	}
	byMax := NormalizeByMax(votes, RatingOptions)
	if byMax[0] != 1 || byMax[1] != 1.0/3.0 {
		t.Fatalf("NormalizeByMax() = %v", byMax)
	}
	if got := NormalizeBySum(nil, RatingOptions); len(got) != len(RatingOptions) {
		t.Fatalf("expected zero vector of length %d, got %v", len(RatingOptions), got)
	}
}

func TestSampleSize(t *testing.T) {
	t.Parallel()

	votes := map[string]int{"spring": 10, "winter": 25}
	if got := SampleSize(votes, SeasonTimeOptions, false); got != 35 {
		t.Fatalf("sum sample = %d, want 35", got)
	}
	if got := SampleSize(votes, SeasonTimeOptions, true); got != 25 {
		t.Fatalf("max sample = %d, want 25", got)
	}
}

func TestVoteSetIsZeroAndBlockByKey(t *testing.T) {
	t.Parallel()

	var v VoteSet
	if !v.IsZero() {
		t.Fatal("empty VoteSet should be zero")
	}
	block, ok := v.BlockByKey("rating")
	if !ok {
		t.Fatal("rating block should exist")
	}
	block["love"] = 1
	if v.IsZero() {
		t.Fatal("VoteSet with a vote should not be zero")
	}
	if _, ok := v.BlockByKey("bogus"); ok {
		t.Fatal("unknown block key should not resolve")
	}
}

func TestVoteSetMergeKeepsAbsentBlocks(t *testing.T) {
	t.Parallel()

	existing := VoteSet{
		Rating:    map[string]int{"love": 10},
		Longevity: map[string]int{"long": 7},
		Sillage:   map[string]int{"strong": 4},
	}
	partial := VoteSet{Rating: map[string]int{"love": 99, "hate": 1}}

	existing.Merge(partial)
	if existing.Rating["love"] != 99 || existing.Rating["hate"] != 1 {
		t.Fatalf("rating block not replaced: %+v", existing.Rating)
	}
	if existing.Longevity["long"] != 7 {
		t.Fatalf("longevity block should survive a partial merge: %+v", existing.Longevity)
	}
	if existing.Sillage["strong"] != 4 {
		t.Fatalf("sillage block should survive a partial merge: %+v", existing.Sillage)
	}
}
