// Package fragrantica parses the raw text of a Fragrantica perfume page
// (a select-all copy) into vote count blocks.
package fragrantica

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/boshow88/Perfume-Tracker/internal/catalog"
)

// Option-name mappings from the Fragrantica vocabulary to the catalog keys.
// Identity entries are spelled out so each block is one table.
var (
	ratingMap = map[string]string{
		"love": "love", "like": "like", "ok": "ok", "dislike": "dislike", "hate": "hate",
	}
	seasonTimeMap = map[string]string{
		"winter": "winter", "spring": "spring", "summer": "summer",
		"fall": "fall", "day": "day", "night": "night",
	}
	longevityMap = map[string]string{
		"very weak": "poor", "weak": "weak", "moderate": "moderate",
		"long lasting": "long", "eternal": "eternal",
	}
	sillageMap = map[string]string{
		"intimate": "intimate", "moderate": "moderate", "strong": "strong", "enormous": "enormous",
	}
	genderMap = map[string]string{
		"female": "female", "more female": "more_female", "unisex": "unisex",
		"more male": "more_male", "male": "male",
	}
	valueMap = map[string]string{
		"way overpriced": "overpriced", "overpriced": "expensive", "ok": "fair",
		"good value": "good", "great value": "excellent",
	}
)

var countPattern = regexp.MustCompile(`^[\d,]+\.?\d*[km]?$`)

// searchWindow limits how far past a section marker options are collected.
const searchWindow = 50

type section struct {
	name    string
	markers []string
	options map[string]string
}

var sections = []section{
	{"Rating", []string{"Rating", "User Ratings"}, ratingMap},
	{"When To Wear", []string{"When To Wear", "When to Wear"}, seasonTimeMap},
	{"Longevity", []string{"LONGEVITY", "Longevity"}, longevityMap},
	{"Sillage", []string{"SILLAGE", "Sillage"}, sillageMap},
	{"Gender", []string{"GENDER", "Gender"}, genderMap},
	{"Price Value", []string{"PRICE VALUE", "Price Value"}, valueMap},
}

// Parse extracts the six vote blocks from pasted page text. Sections or
// options that cannot be located are reported as warnings, never errors;
// whatever was found is returned.
func Parse(text string) (catalog.VoteSet, []string) {
	lines := strings.Split(text, "\n")
	var set catalog.VoteSet
	var warnings []string

	targets := []*map[string]int{
		&set.Rating, &set.SeasonTime, &set.Longevity, &set.Sillage, &set.Gender, &set.Value,
	}
	for i, sec := range sections {
		start := findSection(lines, sec.markers)
		if start < 0 {
			warnings = append(warnings, fmt.Sprintf("%s section not found", sec.name))
			continue
		}
		votes := extractVotes(lines, start, sec.options)
		if len(votes) < len(sec.options) {
			warnings = append(warnings, fmt.Sprintf("%s: found %d/%d options", sec.name, len(votes), len(sec.options)))
		}
		if len(votes) > 0 {
			*targets[i] = votes
		}
	}
	return set, warnings
}

func findSection(lines []string, markers []string) int {
	for i, line := range lines {
		trimmed := strings.ToLower(strings.TrimSpace(line))
		for _, marker := range markers {
			if trimmed == strings.ToLower(marker) {
				return i
			}
		}
	}
	return -1
}

// extractVotes walks forward from a section marker pairing option lines with
// the next numeric line. Each option is consumed at most once.
func extractVotes(lines []string, start int, options map[string]string) map[string]int {
	votes := map[string]int{}
	remaining := map[string]string{}
	for name, key := range options {
		remaining[strings.ToLower(name)] = key
	}

	limit := start + searchWindow
	if limit > len(lines) {
		limit = len(lines)
	}
	for i := start; i < limit && len(remaining) > 0; i++ {
		line := strings.ToLower(strings.TrimSpace(lines[i]))
		key, ok := remaining[line]
		if !ok {
			continue
		}
		for j := i + 1; j < limit; j++ {
			value := strings.TrimSpace(lines[j])
			if value == "" {
				continue
			}
			if countPattern.MatchString(strings.ToLower(value)) {
				votes[key] = ParseVoteCount(value)
				delete(remaining, line)
			}
			break
		}
	}
	return votes
}

// ParseVoteCount converts a display vote count to an integer. Supports the
// plain, "1.4k" and "2.5m" forms; unparseable input yields zero.
func ParseVoteCount(s string) int {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), ",", "")
	if s == "" {
		return 0
	}
	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "k"):
		multiplier = 1_000
		s = strings.TrimSuffix(s, "k")
	case strings.HasSuffix(s, "m"):
		multiplier = 1_000_000
		s = strings.TrimSuffix(s, "m")
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(value * multiplier)
}
