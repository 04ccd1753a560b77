package platform

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Platform string

const (
	Leetcode   Platform = "leetcode"
	Codeforces Platform = "codeforces"
	Hackerrank Platform = "hackerrank"
	Codechef   Platform = "codechef"
)

// Platforms returns every supported platform in dashboard order.
func Platforms() []Platform {
	return []Platform{Leetcode, Codeforces, Codechef, Hackerrank}
}

func ParsePlatform(name string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Platforms() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform %q", name)
}

// Title is the display name, e.g. "Leetcode".
func (p Platform) Title() string {
	if p == "" {
		return ""
	}
	s := string(p)
	return strings.ToUpper(s[:1]) + s[1:]
}

// PlatformStat is one user's counts on one platform. TotalSolved is derived
// from the three counters at write time.
type PlatformStat struct {
	ID           string     `gorm:"primaryKey;type:varchar(36)" json:"id,omitempty"`
	UserID       string     `gorm:"type:varchar(36);not null;uniqueIndex:idx_stats_user_platform" json:"userId"`
	Platform     Platform   `gorm:"type:varchar(16);not null;uniqueIndex:idx_stats_user_platform" json:"platform"`
	Username     string     `gorm:"not null" json:"username"`
	EasySolved   int        `gorm:"not null;default:0" json:"easySolved"`
	MediumSolved int        `gorm:"not null;default:0" json:"mediumSolved"`
	HardSolved   int        `gorm:"not null;default:0" json:"hardSolved"`
	TotalSolved  int        `gorm:"not null;default:0" json:"totalSolved"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

func (s *PlatformStat) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type StatsRequest struct {
	Username     string `json:"username"`
	EasySolved   *int   `json:"easySolved"`
	MediumSolved *int   `json:"mediumSolved"`
	HardSolved   *int   `json:"hardSolved"`
}

type Summary struct {
	Username    string         `json:"username"`
	Platforms   []PlatformStat `json:"platforms"`
	TotalSolved int            `json:"totalSolved"`
}
