package fragrantica

import (
	"strings"
	"testing"
)

const samplePage = `
User Ratings
Rating
love
1.7k
like
1.7k
ok
548
dislike
414
hate
80
When To Wear
winter
658
spring
1.4k
summer
803
fall
1.1k
day
1.4k
night
693
LONGEVITY
no vote
very weak
95
weak
223
moderate
934
long lasting
488
eternal
128
SILLAGE
no vote
intimate
326
moderate
1.1k
strong
395
enormous
130
GENDER
no vote
female
658
more female
497
unisex
497
more male
31
male
11
PRICE VALUE
no vote
way overpriced
235
overpriced
628
ok
498
good value
52
great value
17
`

func TestParseVoteCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
	}{
		{"548", 548},
		{"1.4k", 1400},
		{"2.5m", 2500000},
		{"1,234", 1234},
		{"", 0},
		{"no vote", 0},
		{"  80  ", 80},
	}
	for _, tt := range tests {
		if got := ParseVoteCount(tt.in); got != tt.want {
			t.Fatalf("ParseVoteCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseFullPage(t *testing.T) {
	t.Parallel()

	set, warnings := Parse(samplePage)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	if got := set.Rating["love"]; got != 1700 {
		t.Fatalf("rating love = %d, want 1700", got)
	}
	if got := set.SeasonTime["spring"]; got != 1400 {
		t.Fatalf("season spring = %d, want 1400", got)
	}
	if got := set.Longevity["poor"]; got != 95 {
		t.Fatalf("longevity poor = %d, want 95 (mapped from very weak)", got)
	}
	if got := set.Longevity["long"]; got != 488 {
		t.Fatalf("longevity long = %d, want 488 (mapped from long lasting)", got)
	}
	if got := set.Sillage["intimate"]; got != 326 {
		t.Fatalf("sillage intimate = %d, want 326", got)
	}
	if got := set.Gender["more_female"]; got != 497 {
		t.Fatalf("gender more_female = %d, want 497", got)
	}
	if got := set.Value["overpriced"]; got != 235 {
		t.Fatalf("value overpriced = %d, want 235 (mapped from way overpriced)", got)
	}
	if got := set.Value["expensive"]; got != 628 {
		t.Fatalf("value expensive = %d, want 628 (mapped from overpriced)", got)
	}
	if got := set.Value["fair"]; got != 498 {
		t.Fatalf("value fair = %d, want 498 (mapped from ok)", got)
	}
}

func TestParseMissingSectionsWarn(t *testing.T) {
	t.Parallel()

	partial := `
Rating
love
10
like
5
ok
3
dislike
2
hate
1
`
	set, warnings := Parse(partial)
	if set.Rating["love"] != 10 {
		t.Fatalf("rating love = %d, want 10", set.Rating["love"])
	}
	if len(warnings) != 5 {
		t.Fatalf("expected 5 missing-section warnings, got %v", warnings)
	}
	for _, w := range warnings {
		if !strings.Contains(w, "not found") {
			t.Fatalf("unexpected warning %q", w)
		}
	}
}

func TestParsePartialBlockWarns(t *testing.T) {
	t.Parallel()

	text := `
Rating
love
10
like
5
`
	set, warnings := Parse(text)
	if set.Rating["love"] != 10 || set.Rating["like"] != 5 {
		t.Fatalf("partial rating block = %v", set.Rating)
	}
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "Rating: found 2/5") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected partial-block warning, got %v", warnings)
	}
}
