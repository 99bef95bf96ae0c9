package model

import (
	"fmt"
	"strings"
)

// Rating values for a joke. Zero means the user has not rated it yet.
const (
	RatingNone = 0
	RatingUp   = 1
	RatingDown = -1
)

// Joke represents a single joke fetched from the provider.
// Exactly one of (Setup+Delivery) or Text is populated once fetched:
// two-part jokes carry Setup and Delivery, flat jokes carry Text.
type Joke struct {
	ID       string
	Category Category
	Setup    string // first half of a two-part joke
	Delivery string // punchline of a two-part joke
	Text     string // flat single-line form
	Rating   int    // -1, 0 or +1; local value is authoritative
}

// IsTwoPart returns true when the joke uses the setup/delivery form.
func (j *Joke) IsTwoPart() bool {
	return j.Setup != "" && j.Delivery != ""
}

// Validate checks the one-form invariant: exactly one of
// (setup+delivery) or flat text must be populated.
func (j *Joke) Validate() error {
	if j.ID == "" {
		return fmt.Errorf("joke has no id")
	}

	twoPart := j.Setup != "" || j.Delivery != ""
	flat := j.Text != ""

	if twoPart && flat {
		return fmt.Errorf("joke %s has both two-part and flat forms", j.ID)
	}
	if !twoPart && !flat {
		return fmt.Errorf("joke %s has neither two-part nor flat form", j.ID)
	}
	if twoPart && (j.Setup == "" || j.Delivery == "") {
		return fmt.Errorf("joke %s has an incomplete two-part form", j.ID)
	}

	return nil
}

// DisplayText returns the joke rendered as plain text, picking the
// correct branch for the populated form.
func (j *Joke) DisplayText() string {
	if j.IsTwoPart() {
		return j.Setup + "\n" + j.Delivery
	}
	return j.Text
}

// ShareText returns a single-line representation suitable for sharing
// and clipboard use.
func (j *Joke) ShareText() string {
	return strings.ReplaceAll(j.DisplayText(), "\n", " — ")
}

// NormalizeRating maps an arbitrary rating value to the wire values:
// positive becomes +1, anything else becomes -1.
func NormalizeRating(rating int) int {
	if rating > 0 {
		return RatingUp
	}
	return RatingDown
}
