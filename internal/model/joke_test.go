package model

import "testing"

func TestJoke_Validate(t *testing.T) {
	tests := []struct {
		name    string
		joke    Joke
		wantErr bool
	}{
		{"flat form", Joke{ID: "1", Text: "A joke."}, false},
		{"two-part form", Joke{ID: "2", Setup: "Setup?", Delivery: "Punchline."}, false},
		{"both forms", Joke{ID: "3", Setup: "Setup?", Delivery: "Punchline.", Text: "A joke."}, true},
		{"neither form", Joke{ID: "4"}, true},
		{"setup without delivery", Joke{ID: "5", Setup: "Setup?"}, true},
		{"delivery without setup", Joke{ID: "6", Delivery: "Punchline."}, true},
		{"missing id", Joke{Text: "A joke."}, true},
	}

	for _, test := range tests {
		err := test.joke.Validate()
		if (err != nil) != test.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", test.name, err, test.wantErr)
		}
	}
}

func TestJoke_DisplayText(t *testing.T) {
	tests := []struct {
		joke     Joke
		expected string
	}{
		{Joke{ID: "1", Text: "A flat joke."}, "A flat joke."},
		{Joke{ID: "2", Setup: "Why?", Delivery: "Because."}, "Why?\nBecause."},
	}

	for _, test := range tests {
		result := test.joke.DisplayText()
		if result != test.expected {
			t.Errorf("DisplayText() = %q, expected %q", result, test.expected)
		}
	}
}

func TestJoke_IsTwoPart(t *testing.T) {
	twoPart := Joke{ID: "1", Setup: "Why?", Delivery: "Because."}
	if !twoPart.IsTwoPart() {
		t.Error("Expected two-part joke to report IsTwoPart")
	}

	flat := Joke{ID: "2", Text: "A flat joke."}
	if flat.IsTwoPart() {
		t.Error("Expected flat joke to not report IsTwoPart")
	}
}

func TestNormalizeRating(t *testing.T) {
	tests := []struct {
		rating   int
		expected int
	}{
		{1, RatingUp},
		{5, RatingUp},
		{-1, RatingDown},
		{-3, RatingDown},
		{0, RatingDown},
	}

	for _, test := range tests {
		result := NormalizeRating(test.rating)
		if result != test.expected {
			t.Errorf("NormalizeRating(%d) = %d, expected %d", test.rating, result, test.expected)
		}
	}
}

func TestJoke_ShareText(t *testing.T) {
	joke := Joke{ID: "1", Setup: "Why?", Delivery: "Because."}
	expected := "Why? — Because."
	if result := joke.ShareText(); result != expected {
		t.Errorf("ShareText() = %q, expected %q", result, expected)
	}
}
