package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/thesrcielos/CodingTracker/internal/platform"
)

// DailyStatus is the per-platform "practised today" flag set. It lives only on
// the client and has no relation to the stats stored by the server.
type DailyStatus map[platform.Platform]bool

func (d DailyStatus) AllDone() bool {
	for _, p := range platform.Platforms() {
		if !d[p] {
			return false
		}
	}
	return true
}

// DailyStore persists DailyStatus in a JSON file, one entry per calendar day.
type DailyStore struct {
	path string
	now  func() time.Time
}

func NewDailyStore(path string) *DailyStore {
	return &DailyStore{path: path, now: time.Now}
}

func dailyKey(day time.Time) string {
	return fmt.Sprintf("dailyStatus-%s", day.Format("Mon Jan 02 2006"))
}

func (s *DailyStore) Today() (DailyStatus, error) {
	all, err := s.load()
	if err != nil {
		return nil, err
	}
	status := all[dailyKey(s.now())]
	if status == nil {
		status = DailyStatus{}
	}
	return status, nil
}

func (s *DailyStore) Mark(p platform.Platform, done bool) (DailyStatus, error) {
	all, err := s.load()
	if err != nil {
		return nil, err
	}
	key := dailyKey(s.now())
	status := all[key]
	if status == nil {
		status = DailyStatus{}
	}
	status[p] = done
	all[key] = status

	if err := s.save(all); err != nil {
		return nil, err
	}
	return status, nil
}

func (s *DailyStore) load() (map[string]DailyStatus, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]DailyStatus{}, nil
	}
	if err != nil {
		return nil, err
	}

	all := map[string]DailyStatus{}
	if len(data) == 0 {
		return all, nil
	}
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("read daily status: %w", err)
	}
	return all, nil
}

func (s *DailyStore) save(all map[string]DailyStatus) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
