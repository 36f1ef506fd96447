package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cinemaseat-cli/model"
)

// The movie catalog changes rarely, so it is cached briefly to keep
// startup snappy. Seat maps and booking history are never cached:
// availability is only authoritative when freshly fetched.

func LoadMovieCache() ([]model.Movie, bool, error) {
	path, err := cachePath("movies.json")
	if err != nil {
		return nil, false, err
	}
	cache, err := loadCache[[]model.Movie](path)
	if err != nil {
		return nil, false, err
	}
	return cache.Data, time.Since(cache.UpdatedAt) <= movieCacheTTL, nil
}

func SaveMovieCache(movies []model.Movie) error {
	path, err := cachePath("movies.json")
	if err != nil {
		return err
	}
	return saveCache(path, movies)
}

type profile struct {
	LastUsername string `json:"last_username"`
}

func LastUsername() string {
	path, err := configPath("profile.json")
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var p profile
	if err := json.Unmarshal(data, &p); err != nil {
		return ""
	}
	return p.LastUsername
}

func RememberUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil
	}
	path, err := configPath("profile.json")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(profile{LastUsername: username}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}
