package store

import (
	"encoding/json"
	"fmt"
	"os"
)

// Session stores small user-facing UI state for restoring the last screen
// on relaunch: which panel had focus and where each cursor sat. It lives
// next to the task file so state is naturally scoped per list. It is
// intentionally best effort: callers tolerate missing or invalid data.
type Session struct {
	Version    int    `json:"version"`
	Active     string `json:"active,omitempty"` // "TODO" or "DONE"
	TodoCursor int    `json:"todoCursor,omitempty"`
	DoneCursor int    `json:"doneCursor,omitempty"`
}

// SessionPath derives the session file location from the task file path.
func SessionPath(taskPath string) string {
	return taskPath + ".session.json"
}

// LoadSession reads the session at path. Missing or corrupted state reads
// as a fresh session.
func LoadSession(path string) Session {
	b, err := os.ReadFile(path)
	if err != nil {
		return Session{Version: 1}
	}
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return Session{Version: 1}
	}
	if s.Version == 0 {
		s.Version = 1
	}
	return s
}

// SaveSession writes s to path via a temp file renamed into place.
func SaveSession(path string, s Session) error {
	if s.Version == 0 {
		s.Version = 1
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}
	if err := writeFileAtomic(path, append(b, '\n')); err != nil {
		return fmt.Errorf("save session state: %w", err)
	}
	return nil
}
