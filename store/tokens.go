package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"cinemaseat-cli/model"
)

// FileTokens persists the access/refresh pair as a JSON file under the
// user config dir, so a login survives restarts. Getters return ""
// when nothing is stored; they never fail loudly, matching the
// browser-storage contract the API was designed against.
type FileTokens struct{}

func (FileTokens) Access() string {
	return loadTokens().Access
}

func (FileTokens) Refresh() string {
	return loadTokens().Refresh
}

func (FileTokens) SetPair(access string, refresh string) error {
	return saveTokens(model.TokenPair{Access: access, Refresh: refresh})
}

func (FileTokens) SetAccess(access string) error {
	pair := loadTokens()
	pair.Access = access
	return saveTokens(pair)
}

func (FileTokens) Clear() error {
	path, err := configPath("tokens.json")
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func loadTokens() model.TokenPair {
	path, err := configPath("tokens.json")
	if err != nil {
		return model.TokenPair{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.TokenPair{}
	}
	var pair model.TokenPair
	if err := json.Unmarshal(data, &pair); err != nil {
		return model.TokenPair{}
	}
	return pair
}

func saveTokens(pair model.TokenPair) error {
	path, err := configPath("tokens.json")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(pair, "", "  ")
	if err != nil {
		return err
	}
	// credentials, keep them out of group/world reach
	return os.WriteFile(path, payload, 0o600)
}
