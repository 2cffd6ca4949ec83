package riot

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/catalog"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/league"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/team"
	"github.com/riskibarqy/lol-stats-sync/internal/usecase"
)

var _ usecase.RiotProvider = (*Client)(nil)

func (c *Client) FetchSummonerByName(ctx context.Context, region, normalizedName string) (usecase.ExternalSummoner, error) {
	if normalizedName == "" {
		return usecase.ExternalSummoner{}, fmt.Errorf("%w: summoner name is required", usecase.ErrInvalidInput)
	}

	var out map[string]summonerDTO
	rawURL := c.regionalURL(region, "/v1.4/summoner/by-name/"+url.PathEscape(normalizedName))
	if err := c.doJSON(ctx, "summoner_by_name", rawURL, &out); err != nil {
		return usecase.ExternalSummoner{}, fmt.Errorf("fetch summoner by name region=%s name=%s: %w", region, normalizedName, err)
	}

	dto, ok := out[normalizedName]
	if !ok && len(out) == 1 {
		for _, only := range out {
			dto, ok = only, true
		}
	}
	if !ok || dto.ID <= 0 {
		return usecase.ExternalSummoner{}, fmt.Errorf("%w: summoner %q not returned by riot region=%s", usecase.ErrNotFound, normalizedName, region)
	}
	return mapSummoner(dto), nil
}

func (c *Client) FetchSummonersByIDs(ctx context.Context, region string, summonerIDs []int64) ([]usecase.ExternalSummoner, error) {
	if len(summonerIDs) == 0 {
		return nil, nil
	}
	if len(summonerIDs) > MaxBatch {
		return nil, fmt.Errorf("%w: at most %d summoner ids per request, got %d", usecase.ErrInvalidInput, MaxBatch, len(summonerIDs))
	}

	var out map[string]summonerDTO
	rawURL := c.regionalURL(region, "/v1.4/summoner/"+joinIDs(summonerIDs))
	if err := c.doJSON(ctx, "summoner_by_ids", rawURL, &out); err != nil {
		if stderrors.Is(err, usecase.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch summoners by ids region=%s count=%d: %w", region, len(summonerIDs), err)
	}

	items := make([]usecase.ExternalSummoner, 0, len(out))
	for _, dto := range out {
		if dto.ID <= 0 {
			continue
		}
		items = append(items, mapSummoner(dto))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].SummonerID < items[j].SummonerID })
	return items, nil
}

func (c *Client) FetchRecentGames(ctx context.Context, region string, summonerID int64) ([]usecase.ExternalGame, error) {
	var out recentGamesDTO
	rawURL := c.regionalURL(region, "/v1.3/game/by-summoner/"+strconv.FormatInt(summonerID, 10)+"/recent")
	if err := c.doJSON(ctx, "recent_games", rawURL, &out); err != nil {
		return nil, fmt.Errorf("fetch recent games region=%s summoner_id=%d: %w", region, summonerID, err)
	}

	games := make([]usecase.ExternalGame, 0, len(out.Games))
	for _, g := range out.Games {
		games = append(games, mapGame(g))
	}
	return games, nil
}

func (c *Client) FetchLeaguesBySummonerIDs(ctx context.Context, region string, summonerIDs []int64) (map[int64][]league.Snapshot, error) {
	if len(summonerIDs) == 0 {
		return map[int64][]league.Snapshot{}, nil
	}
	if len(summonerIDs) > MaxBatch {
		return nil, fmt.Errorf("%w: at most %d summoner ids per request, got %d", usecase.ErrInvalidInput, MaxBatch, len(summonerIDs))
	}

	var out map[string][]leagueDTO
	rawURL := c.regionalURL(region, "/v2.5/league/by-summoner/"+joinIDs(summonerIDs))
	if err := c.doJSON(ctx, "league_by_summoner", rawURL, &out); err != nil {
		// The legacy API answers 404 for summoners that are in no league.
		if stderrors.Is(err, usecase.ErrNotFound) {
			return map[int64][]league.Snapshot{}, nil
		}
		return nil, fmt.Errorf("fetch leagues region=%s count=%d: %w", region, len(summonerIDs), err)
	}

	result := make(map[int64][]league.Snapshot, len(out))
	for _, id := range summonerIDs {
		leagues, ok := out[summonerIDKey(id)]
		if !ok {
			continue
		}
		snaps := make([]league.Snapshot, 0, len(leagues))
		for _, l := range leagues {
			snaps = append(snaps, mapLeague(region, l))
		}
		result[id] = snaps
	}
	return result, nil
}

func (c *Client) FetchTeamsBySummonerID(ctx context.Context, region string, summonerID int64) ([]team.Snapshot, error) {
	var out map[string][]teamDTO
	rawURL := c.regionalURL(region, "/v2.4/team/by-summoner/"+strconv.FormatInt(summonerID, 10))
	if err := c.doJSON(ctx, "team_by_summoner", rawURL, &out); err != nil {
		if stderrors.Is(err, usecase.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch teams region=%s summoner_id=%d: %w", region, summonerID, err)
	}

	teams := out[summonerIDKey(summonerID)]
	snaps := make([]team.Snapshot, 0, len(teams))
	for _, t := range teams {
		if t.FullID == "" {
			continue
		}
		snaps = append(snaps, mapTeam(region, t))
	}
	return snaps, nil
}

func (c *Client) FetchChampions(ctx context.Context) ([]catalog.Champion, error) {
	var out staticListDTO[championDTO]
	if err := c.doJSON(ctx, "static_champion", c.staticURL("/v1.2/champion"), &out); err != nil {
		return nil, fmt.Errorf("fetch champions: %w", err)
	}

	items := make([]catalog.Champion, 0, len(out.Data))
	for _, dto := range out.Data {
		items = append(items, mapChampion(dto))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ChampionID < items[j].ChampionID })
	return items, nil
}

func (c *Client) FetchItems(ctx context.Context) ([]catalog.Item, error) {
	var out staticListDTO[itemDTO]
	if err := c.doJSON(ctx, "static_item", c.staticURL("/v1.2/item?itemListData=groups,plaintext"), &out); err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}

	items := make([]catalog.Item, 0, len(out.Data))
	for _, dto := range out.Data {
		items = append(items, mapItem(dto))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ItemID < items[j].ItemID })
	return items, nil
}

func (c *Client) FetchSummonerSpells(ctx context.Context) ([]catalog.SummonerSpell, error) {
	var out staticListDTO[summonerSpellDTO]
	if err := c.doJSON(ctx, "static_summoner_spell", c.staticURL("/v1.2/summoner-spell?spellData=summonerLevel"), &out); err != nil {
		return nil, fmt.Errorf("fetch summoner spells: %w", err)
	}

	items := make([]catalog.SummonerSpell, 0, len(out.Data))
	for _, dto := range out.Data {
		items = append(items, mapSummonerSpell(dto))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].SpellID < items[j].SpellID })
	return items, nil
}
