package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jokeget/jokeboard/internal/model"
)

func TestClient_FetchJoke_CategoryInRequestPath(t *testing.T) {
	tests := []struct {
		category     model.Category
		expectedPath string
	}{
		{model.CategoryProgramming, "/joke/Programming"},
		{model.CategoryAny, "/joke/Any"},
	}

	for _, test := range tests {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			if r.URL.RawQuery != SafeModeParam {
				t.Errorf("Expected query %q, got %q", SafeModeParam, r.URL.RawQuery)
			}
			w.Write([]byte(`{"error":false,"id":42,"category":"Programming","type":"single","joke":"A flat joke."}`))
		}))

		client := NewClient(server.URL)
		joke, err := client.FetchJoke(context.Background(), test.category)
		server.Close()

		if err != nil {
			t.Fatalf("FetchJoke(%s) returned error: %v", test.category, err)
		}
		if gotPath != test.expectedPath {
			t.Errorf("FetchJoke(%s) requested path %q, expected %q", test.category, gotPath, test.expectedPath)
		}
		if joke.Rating != model.RatingNone {
			t.Errorf("Expected fresh joke rating %d, got %d", model.RatingNone, joke.Rating)
		}
	}
}

func TestClient_FetchJoke_TwoPartForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":false,"id":7,"category":"Pun","type":"twopart","setup":"Why?","delivery":"Because."}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	joke, err := client.FetchJoke(context.Background(), model.CategoryPun)
	if err != nil {
		t.Fatalf("FetchJoke returned error: %v", err)
	}

	if !joke.IsTwoPart() {
		t.Error("Expected a two-part joke")
	}
	if joke.ID != "7" {
		t.Errorf("Expected joke ID '7', got %q", joke.ID)
	}
	if joke.Setup != "Why?" || joke.Delivery != "Because." {
		t.Errorf("Unexpected joke content: setup=%q delivery=%q", joke.Setup, joke.Delivery)
	}
}

func TestClient_FetchJoke_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchJoke(context.Background(), model.CategoryAny)
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("Expected ErrNetwork for status 500, got %v", err)
	}
}

func TestClient_FetchJoke_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchJoke(context.Background(), model.CategoryAny)
	if !errors.Is(err, ErrParse) {
		t.Errorf("Expected ErrParse for malformed body, got %v", err)
	}
}

func TestClient_FetchJoke_BothFormsRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":false,"id":9,"joke":"Flat.","setup":"Why?","delivery":"Because."}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchJoke(context.Background(), model.CategoryAny)
	if !errors.Is(err, ErrParse) {
		t.Errorf("Expected ErrParse when both forms are populated, got %v", err)
	}
}

func TestClient_FetchJoke_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchJoke(context.Background(), model.CategoryAny)
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("Expected ErrNetwork when provider flags an error, got %v", err)
	}
}

func TestClient_SubmitRating_Body(t *testing.T) {
	tests := []struct {
		rating         int
		expectedRating int
	}{
		{1, 1},
		{-1, -1},
		{5, 1},
		{0, -1},
	}

	for _, test := range tests {
		var got ratingPayload
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("Expected POST, got %s", r.Method)
			}
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Errorf("Failed to decode rating body: %v", err)
			}
		}))

		client := NewClient(server.URL)
		err := client.SubmitRating(context.Background(), "42", test.rating)
		server.Close()

		if err != nil {
			t.Fatalf("SubmitRating(%d) returned error: %v", test.rating, err)
		}
		if got.Rating != test.expectedRating {
			t.Errorf("SubmitRating(%d) sent rating %d, expected %d", test.rating, got.Rating, test.expectedRating)
		}
		if got.Joke != "42" {
			t.Errorf("SubmitRating sent joke id %q, expected '42'", got.Joke)
		}
		if got.FormatVersion != FormatVersion {
			t.Errorf("SubmitRating sent formatVersion %d, expected %d", got.FormatVersion, FormatVersion)
		}
	}
}

func TestClient_SubmitRating_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.SubmitRating(context.Background(), "42", 1)
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("Expected ErrNetwork for status 502, got %v", err)
	}
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	client := NewClient("")
	if client.baseURL != DefaultBaseURL {
		t.Errorf("Expected default base URL %s, got %s", DefaultBaseURL, client.baseURL)
	}
}
