package store

import (
	"encoding/json"
	"log"
	"time"

	"fyne.io/fyne/v2"

	"github.com/jokeget/jokeboard/internal/model"
)

// Storage keys for Fyne preferences
const (
	KeyFavorites = "favoriteJokes"
)

// FavoritesTTL is the expiry horizon refreshed on every write
const FavoritesTTL = 30 * 24 * time.Hour

// envelope is the serialized form of the favorites list. ExpiresAt is an
// absolute deadline; a stored list past its deadline loads as empty.
type envelope struct {
	ExpiresAt time.Time    `json:"expiresAt"`
	Jokes     []model.Joke `json:"jokes"`
}

// FavoritesStore persists the favorited jokes list in the app preferences,
// de-duplicated by joke id with insertion order preserved.
type FavoritesStore struct {
	prefs fyne.Preferences
}

// NewFavoritesStore creates a new favorites store
func NewFavoritesStore(prefs fyne.Preferences) *FavoritesStore {
	return &FavoritesStore{prefs: prefs}
}

// Load reads the persisted list. Absent, corrupt, or expired data yields
// an empty list, never an error.
func (fs *FavoritesStore) Load() []model.Joke {
	raw := fs.prefs.String(KeyFavorites)
	if raw == "" {
		return []model.Joke{}
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		log.Printf("Discarding corrupt favorites data: %v", err)
		return []model.Joke{}
	}

	if !env.ExpiresAt.IsZero() && time.Now().After(env.ExpiresAt) {
		log.Printf("Discarding expired favorites data (expired %s)", env.ExpiresAt)
		return []model.Joke{}
	}

	if env.Jokes == nil {
		return []model.Joke{}
	}
	return env.Jokes
}

// Toggle removes the joke if one with the same id is present, otherwise
// appends it. The new list is persisted and returned. Toggling the same
// joke twice restores the original list.
func (fs *FavoritesStore) Toggle(joke model.Joke) []model.Joke {
	list := fs.Load()

	found := -1
	for i, fav := range list {
		if fav.ID == joke.ID {
			found = i
			break
		}
	}

	if found >= 0 {
		list = append(list[:found], list[found+1:]...)
	} else {
		list = append(list, joke)
	}

	fs.persist(list)
	return list
}

// IsFavorited returns whether a joke with the given id is in the list
func (fs *FavoritesStore) IsFavorited(jokeID string) bool {
	for _, fav := range fs.Load() {
		if fav.ID == jokeID {
			return true
		}
	}
	return false
}

// persist writes the list with a refreshed expiry horizon. Writes are
// best-effort; serialization failures are logged and dropped.
func (fs *FavoritesStore) persist(list []model.Joke) {
	env := envelope{
		ExpiresAt: time.Now().Add(FavoritesTTL),
		Jokes:     list,
	}

	raw, err := json.Marshal(env)
	if err != nil {
		log.Printf("Failed to serialize favorites: %v", err)
		return
	}

	fs.prefs.SetString(KeyFavorites, string(raw))
}
