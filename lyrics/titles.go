// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lyrics

import (
	"fmt"
	"math/rand/v2"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Titles is the closed set of songs a round can be about
var Titles = []string{
	"womenizer", "careless whisper", "Shape of You", "flowers",
	"Blinding Lights", "believer", "harleys in hawaii", "play date", "Uptown Funk",
	"snow man", "heathens", "Bad Guy", "take on me", "billie jean", "rasputin",
	"chandelier", "cheap thrills", "gloria", "new rules", "Opps I did it again",
}

// PickTitle returns a title chosen uniformly at random from Titles
func PickTitle() string {
	return Titles[rand.IntN(len(Titles))]
}

// IsKnownTitle reports whether title is in Titles (exact match)
func IsKnownTitle(title string) bool {
	for _, t := range Titles {
		if t == title {
			return true
		}
	}
	return false
}

// TitlesMatch compares a guess with a title ignoring case.
// Both sides get full Unicode lower-case mapping, so multi-rune mappings
// and the Greek final sigma compare as expected.
func TitlesMatch(guess, title string) bool {
	// Casers keep state between calls and are not safe to share
	return cases.Lower(language.Und).String(guess) == cases.Lower(language.Und).String(title)
}

// Prompt builds the user instruction sent for a title
func Prompt(title string) string {
	return fmt.Sprintf("Generate 2-4 lines of lyrics from the song '%s' without revealing the song title.", title)
}
