package services

import (
	"fmt"
	"regexp"
	"strings"

	"concierge/internal/models/session_models"
)

var (
	dayMarkerRe = regexp.MustCompile(`Day \d+:`)
	hotelLineRe = regexp.MustCompile(`Hotel: (.+)`)
)

// ExtractItinerary mines day-by-day itinerary entries out of a free-form
// assistant response. The text before the first "Day N:" marker is dropped
// and each following segment becomes one entry.
//
// Day numbers in the output are positional (1-based over the segments), not
// parsed from the matched marker. A response with duplicate or out-of-order
// "Day N:" markers is silently renumbered; for well-formed responses the two
// coincide. See DESIGN.md before changing this.
//
// Safe to call on a partial, still-streaming buffer; text without markers
// yields nil rather than an error.
func ExtractItinerary(text string) []session_models.ItineraryEntry {
	segments := dayMarkerRe.Split(text, -1)
	if len(segments) < 2 {
		return nil
	}

	var entries []session_models.ItineraryEntry
	for i, segment := range segments[1:] {
		day := i + 1
		content := strings.TrimSpace(fmt.Sprintf("Day %d:%s", day, segment))
		entries = append(entries, session_models.ItineraryEntry{
			Day:     day,
			Content: content,
		})
	}
	return entries
}

// ExtractHotelNames collects the remainder of every "Hotel: <name>" line, in
// order of appearance. Duplicates are preserved; consumers that need a set
// de-duplicate themselves. Marker-free text yields nil.
func ExtractHotelNames(text string) []string {
	matches := hotelLineRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSpace(m[1]))
	}
	return names
}
