package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seeker-ball/internal/progress"
)

// ProfileStore adapts one profile of the database to progress.Store.
type ProfileStore struct {
	store   *Store
	profile string
	logger  *log.Logger
}

// KV returns a progress.Store scoped to profile. Read errors are logged and
// reported as missing keys so the loader falls back to defaults.
func (s *Store) KV(profile string, logger *log.Logger) *ProfileStore {
	if profile == "" {
		profile = DefaultProfile
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ProfileStore{store: s, profile: profile, logger: logger}
}

// Profile returns the profile name.
func (p *ProfileStore) Profile() string { return p.profile }

// Get implements progress.Store.
func (p *ProfileStore) Get(key string) (string, bool) {
	v, ok, err := p.store.GetValue(p.profile, key)
	if err != nil {
		p.logger.Warn("read failed, using default", "profile", p.profile, "key", key, "err", err)
		return "", false
	}
	return v, ok
}

// Set implements progress.Store.
func (p *ProfileStore) Set(key, value string) error {
	return p.store.SetValue(p.profile, key, value)
}

var _ progress.Store = (*ProfileStore)(nil)
