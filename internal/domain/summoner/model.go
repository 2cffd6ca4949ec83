package summoner

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Summoner is the locally cached copy of an upstream player identity.
type Summoner struct {
	ID             int64
	SummonerID     int64
	Name           string
	NormalizedName string
	Region         string
	ProfileIconID  int
	SummonerLevel  int
	RevisionDate   int64
	LastSyncedAt   time.Time
}

// Filter narrows List. Zero values mean "no constraint".
type Filter struct {
	Region   string
	Page     int
	PageSize int
}

// NormalizeName lowercases name and drops every whitespace rune, matching
// the key the upstream uses for by-name lookups.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// FreshAt reports whether the cached copy may still be served at now.
func (s Summoner) FreshAt(now time.Time, ttl time.Duration) bool {
	return now.Before(s.LastSyncedAt.Add(ttl))
}

func (s Summoner) Validate() error {
	if s.SummonerID <= 0 {
		return fmt.Errorf("summoner id is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("summoner name is required")
	}
	if s.NormalizedName == "" {
		return fmt.Errorf("summoner normalized name is required")
	}
	if s.Region == "" {
		return fmt.Errorf("summoner region is required")
	}
	return nil
}
