package riot

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/lol-stats-sync/internal/platform/logging"
	"github.com/riskibarqy/lol-stats-sync/internal/platform/resilience"
	"github.com/riskibarqy/lol-stats-sync/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate func(*ClientConfig)) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := ClientConfig{
		BaseURL:       srv.URL,
		StaticBaseURL: srv.URL,
		APIKey:        "test-key",
		Timeout:       2 * time.Second,
		RetryBackoff:  time.Millisecond,
		Logger:        logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled: false,
		},
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return NewClient(cfg)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestFetchSummonerByName(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/lol/kr/v1.4/summoner/by-name/hideonbush" {
			t.Errorf("unexpected path=%s", r.URL.Path)
		}
		if got := r.Header.Get("X-Riot-Token"); got != "test-key" {
			t.Errorf("unexpected api key header=%q", got)
		}
		writeJSON(w, http.StatusOK, `{"hideonbush":{"id":4460427,"name":"Hide on bush","profileIconId":6,"summonerLevel":30,"revisionDate":1431045262000}}`)
	}, nil)

	got, err := client.FetchSummonerByName(context.Background(), "kr", "hideonbush")
	if err != nil {
		t.Fatalf("fetch summoner: %v", err)
	}
	if got.SummonerID != 4460427 || got.Name != "Hide on bush" || got.SummonerLevel != 30 {
		t.Fatalf("unexpected summoner: %+v", got)
	}
}

func TestFetchSummonerByNameNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"status":{"message":"Not Found","status_code":404}}`)
	}, nil)

	_, err := client.FetchSummonerByName(context.Background(), "na", "nobody")
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got=%v", err)
	}
}

func TestServerErrorsAreRetriedAndReportedUnavailable(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		writeJSON(w, http.StatusServiceUnavailable, `{}`)
	}, func(cfg *ClientConfig) {
		cfg.MaxRetries = 2
	})

	_, err := client.FetchRecentGames(context.Background(), "na", 1)
	if !errors.Is(err, usecase.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got=%v", err)
	}
	if hits.Load() != 3 {
		t.Fatalf("expected 3 attempts, got=%d", hits.Load())
	}
}

func TestRateLimitedCarriesRetryAfter(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "3")
		writeJSON(w, http.StatusTooManyRequests, `{}`)
	}, nil)

	_, err := client.FetchRecentGames(context.Background(), "na", 1)
	if !errors.Is(err, usecase.ErrUpstreamRateLimited) {
		t.Fatalf("expected ErrUpstreamRateLimited, got=%v", err)
	}
	after, ok := usecase.RetryAfter(err)
	if !ok || after != 3*time.Second {
		t.Fatalf("expected retry-after=3s, got=%v ok=%v", after, ok)
	}
}

func TestCircuitOpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		writeJSON(w, http.StatusInternalServerError, `{}`)
	}, func(cfg *ClientConfig) {
		cfg.CircuitBreaker = resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		}
	})

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := client.FetchRecentGames(ctx, "na", int64(i+1)); !errors.Is(err, usecase.ErrUpstreamUnavailable) {
			t.Fatalf("attempt %d: expected ErrUpstreamUnavailable, got=%v", i, err)
		}
	}

	_, err := client.FetchRecentGames(ctx, "na", 99)
	if !errors.Is(err, usecase.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable from open circuit, got=%v", err)
	}
	if !strings.Contains(err.Error(), "circuit") {
		t.Fatalf("expected circuit rejection, got=%v", err)
	}
	if hits.Load() != 2 {
		t.Fatalf("expected open circuit to skip the upstream, hits=%d", hits.Load())
	}
}

func TestNotFoundDoesNotTripCircuit(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		writeJSON(w, http.StatusNotFound, `{}`)
	}, func(cfg *ClientConfig) {
		cfg.CircuitBreaker = resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Minute, HalfOpenMaxReq: 1}
	})

	for i := 0; i < 3; i++ {
		if _, err := client.FetchSummonerByName(context.Background(), "na", "ghost"); !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got=%v", err)
		}
	}
	if hits.Load() != 3 {
		t.Fatalf("expected every call to reach upstream, hits=%d", hits.Load())
	}
}

func TestFetchSummonersByIDs(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/lol/euw/v1.4/summoner/3,1,2" {
			t.Errorf("unexpected path=%s", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, `{
			"1":{"id":1,"name":"One","profileIconId":1,"summonerLevel":30,"revisionDate":10},
			"3":{"id":3,"name":"Three","profileIconId":3,"summonerLevel":12,"revisionDate":30}
		}`)
	}, nil)

	got, err := client.FetchSummonersByIDs(context.Background(), "euw", []int64{3, 1, 2})
	if err != nil {
		t.Fatalf("fetch summoners: %v", err)
	}
	if len(got) != 2 || got[0].SummonerID != 1 || got[1].SummonerID != 3 {
		t.Fatalf("unexpected summoners: %+v", got)
	}
}

func TestFetchSummonersByIDsRejectsOversizedBatch(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Errorf("upstream must not be called")
		writeJSON(w, http.StatusOK, `{}`)
	}, nil)

	ids := make([]int64, MaxBatch+1)
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	if _, err := client.FetchSummonersByIDs(context.Background(), "na", ids); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got=%v", err)
	}
}

func TestFetchRecentGamesMapsFellowPlayersAndStats(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/lol/na/v1.3/game/by-summoner/42/recent" {
			t.Errorf("unexpected path=%s", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, `{"summonerId":42,"games":[{
			"gameId":1001,"championId":103,"createDate":1431045262000,"gameMode":"CLASSIC","gameType":"MATCHED_GAME",
			"subType":"NORMAL","invalid":false,"ipEarned":91,"level":30,"mapId":11,"spell1":4,"spell2":14,"teamId":100,
			"fellowPlayers":[{"summonerId":7,"championId":1,"teamId":200}],
			"stats":{"assists":0,"goldEarned":9120,"win":true}
		}]}`)
	}, nil)

	games, err := client.FetchRecentGames(context.Background(), "na", 42)
	if err != nil {
		t.Fatalf("fetch recent games: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected one game, got=%d", len(games))
	}
	g := games[0]
	if g.GameID != 1001 || g.Spell1ID != 4 || g.Spell2ID != 14 || len(g.FellowPlayers) != 1 {
		t.Fatalf("unexpected game: %+v", g)
	}
	if g.Stats.Assists == nil || *g.Stats.Assists != 0 || g.Stats.ChampionsKilled != nil {
		t.Fatalf("unexpected stats mapping: assists=%v champions_killed=%v", g.Stats.Assists, g.Stats.ChampionsKilled)
	}
}

func TestFetchLeaguesTreatsNotFoundAsNoLeagues(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, `{}`)
	}, nil)

	got, err := client.FetchLeaguesBySummonerIDs(context.Background(), "na", []int64{5})
	if err != nil {
		t.Fatalf("fetch leagues: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no leagues, got=%v", got)
	}
}

func TestFetchLeaguesKeyedBySummonerID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"5":[{"queue":"RANKED_SOLO_5x5","name":"Nasus's Maulers","tier":"SILVER","participantId":"5",
			"entries":[{"playerOrTeamId":"5","playerOrTeamName":"Five","division":"III","leaguePoints":40,"wins":12}]}]}`)
	}, nil)

	got, err := client.FetchLeaguesBySummonerIDs(context.Background(), "na", []int64{5})
	if err != nil {
		t.Fatalf("fetch leagues: %v", err)
	}
	snaps := got[5]
	if len(snaps) != 1 || snaps[0].League.Region != "na" || len(snaps[0].Entries) != 1 {
		t.Fatalf("unexpected leagues: %+v", got)
	}
}

func TestFetchTeams(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/lol/na/v2.4/team/by-summoner/9" {
			t.Errorf("unexpected path=%s", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, `{"9":[{"fullId":"TEAM-1","name":"Alpha","tag":"ALP","status":"RANKED",
			"createDate":1,"modifyDate":2,"roster":{"ownerId":9,"memberList":[{"playerId":9,"status":"MEMBER","inviteDate":1,"joinDate":2}]},
			"teamStatDetails":[{"teamStatType":"RANKED_TEAM_5x5","averageGamesPlayed":0,"wins":3,"losses":1}],
			"matchHistory":[{"gameId":77,"kills":20,"deaths":10,"assists":30,"win":true,"opposingTeamName":"Beta"}]}]}`)
	}, nil)

	got, err := client.FetchTeamsBySummonerID(context.Background(), "na", 9)
	if err != nil {
		t.Fatalf("fetch teams: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one team, got=%d", len(got))
	}
	snap := got[0]
	if snap.Team.FullID != "TEAM-1" || snap.Team.Region != "na" || snap.Team.LastGameDate != nil {
		t.Fatalf("unexpected team: %+v", snap.Team)
	}
	if snap.Roster.OwnerID != 9 || len(snap.Members) != 1 || len(snap.StatDetails) != 1 || len(snap.MatchHistory) != 1 {
		t.Fatalf("unexpected snapshot children: %+v", snap)
	}
}

func TestFetchStaticCatalogs(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/lol/static-data/na/v1.2/champion":
			writeJSON(w, http.StatusOK, `{"type":"champion","version":"5.9.1","data":{
				"Annie":{"id":1,"key":"Annie","name":"Annie","title":"the Dark Child"},
				"Olaf":{"id":2,"key":"Olaf","name":"Olaf","title":"the Berserker"}}}`)
		case "/api/lol/static-data/na/v1.2/item":
			writeJSON(w, http.StatusOK, `{"type":"item","data":{
				"1001":{"id":1001,"name":"Boots of Speed","description":"Boots","plaintext":"Slightly increases Movement Speed"},
				"2003":{"id":2003,"name":"Health Potion","description":"Potion","group":"HealthPotion"}}}`)
		case "/api/lol/static-data/na/v1.2/summoner-spell":
			writeJSON(w, http.StatusOK, `{"type":"summoner","data":{
				"SummonerFlash":{"id":4,"key":"SummonerFlash","name":"Flash","description":"Teleports","summonerLevel":8}}}`)
		default:
			t.Errorf("unexpected path=%s", r.URL.Path)
			writeJSON(w, http.StatusNotFound, `{}`)
		}
	}, nil)

	ctx := context.Background()
	champions, err := client.FetchChampions(ctx)
	if err != nil || len(champions) != 2 || champions[0].ChampionID != 1 {
		t.Fatalf("unexpected champions=%+v err=%v", champions, err)
	}

	items, err := client.FetchItems(ctx)
	if err != nil || len(items) != 2 {
		t.Fatalf("unexpected items=%+v err=%v", items, err)
	}
	if items[0].PlainText == nil || items[0].Group != nil {
		t.Fatalf("unexpected optional fields on boots: %+v", items[0])
	}
	if items[1].PlainText != nil || items[1].Group == nil || *items[1].Group != "HealthPotion" {
		t.Fatalf("unexpected optional fields on potion: %+v", items[1])
	}

	spells, err := client.FetchSummonerSpells(ctx)
	if err != nil || len(spells) != 1 || spells[0].SummonerLevel != 8 {
		t.Fatalf("unexpected spells=%+v err=%v", spells, err)
	}
}

func TestJoinIDs(t *testing.T) {
	t.Parallel()

	if got := joinIDs([]int64{10, 2, 3000}); got != "10,2,3000" {
		t.Fatalf("unexpected joined ids=%q", got)
	}
	if got := joinIDs(nil); got != "" {
		t.Fatalf("expected empty string, got=%q", got)
	}
}
