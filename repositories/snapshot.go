package repositories

import (
	"encoding/json"
	"errors"
	"os"

	"daleel-cms/models"
)

// Snapshot is the serialisable state of the in-memory store. Counters are
// part of it so a reloaded store never re-issues an id that was handed out
// before the restart.
type Snapshot struct {
	Users       map[int]models.User       `json:"users"`
	Categories  map[int]models.Category   `json:"categories"`
	Articles    map[int]models.Article    `json:"articles"`
	Media       map[int]models.Media      `json:"media"`
	Questions   map[int]models.Question   `json:"questions"`
	Libraries   map[int]models.Library    `json:"libraries"`
	Books       map[int]models.Book       `json:"books"`
	Collections map[int]models.Collection `json:"collections"`
	Counters    counters                  `json:"counters"`
}

func (s *MemoryStorage) snapshot() Snapshot {
	snap := Snapshot{
		Users:       make(map[int]models.User, len(s.users)),
		Categories:  make(map[int]models.Category, len(s.categories)),
		Articles:    make(map[int]models.Article, len(s.articles)),
		Media:       make(map[int]models.Media, len(s.media)),
		Questions:   make(map[int]models.Question, len(s.questions)),
		Libraries:   make(map[int]models.Library, len(s.libraries)),
		Books:       make(map[int]models.Book, len(s.books)),
		Collections: make(map[int]models.Collection, len(s.collections)),
		Counters:    s.counters,
	}
	for id, v := range s.users {
		snap.Users[id] = v
	}
	for id, v := range s.categories {
		snap.Categories[id] = v
	}
	for id, v := range s.articles {
		snap.Articles[id] = v
	}
	for id, v := range s.media {
		snap.Media[id] = v
	}
	for id, v := range s.questions {
		snap.Questions[id] = v
	}
	for id, v := range s.libraries {
		snap.Libraries[id] = v
	}
	for id, v := range s.books {
		snap.Books[id] = v
	}
	for id, v := range s.collections {
		snap.Collections[id] = v
	}
	return snap
}

// SaveSnapshot writes the whole store to path as JSON. The write goes
// through a temp file and rename so a crash mid-write leaves the previous
// snapshot intact.
func (s *MemoryStorage) SaveSnapshot(path string) error {
	s.mu.RLock()
	snap := s.snapshot()
	s.mu.RUnlock()

	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadSnapshot replaces the store's contents with the snapshot at path.
// A missing file is not an error: the store simply starts empty.
func (s *MemoryStorage) LoadSnapshot(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = orEmpty(snap.Users)
	s.categories = orEmpty(snap.Categories)
	s.articles = orEmpty(snap.Articles)
	s.media = orEmpty(snap.Media)
	s.questions = orEmpty(snap.Questions)
	s.libraries = orEmpty(snap.Libraries)
	s.books = orEmpty(snap.Books)
	s.collections = orEmpty(snap.Collections)
	s.counters = snap.Counters
	return nil
}

func orEmpty[T any](m map[int]T) map[int]T {
	if m == nil {
		return map[int]T{}
	}
	return m
}
