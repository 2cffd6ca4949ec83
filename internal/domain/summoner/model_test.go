package summoner

import (
	"testing"
	"time"
)

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Hide on bush":  "hideonbush",
		"  Faker ":      "faker",
		"Ünïcode\tName": "ünïcodename",
		"":              "",
	}
	for in, want := range cases {
		if got := NormalizeName(in); got != want {
			t.Fatalf("NormalizeName(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestFreshAt_BoundaryIsStale(t *testing.T) {
	t.Parallel()

	synced := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s := Summoner{LastSyncedAt: synced}
	ttl := 15 * time.Minute

	if !s.FreshAt(synced.Add(ttl-time.Nanosecond), ttl) {
		t.Fatalf("expected fresh just before ttl")
	}
	if s.FreshAt(synced.Add(ttl), ttl) {
		t.Fatalf("expected stale exactly at ttl")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := Summoner{SummonerID: 1, Name: "Faker", NormalizedName: "faker", Region: "kr"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid summoner: %v", err)
	}
	invalid := valid
	invalid.SummonerID = 0
	if err := invalid.Validate(); err == nil {
		t.Fatalf("expected error for missing summoner id")
	}
}
