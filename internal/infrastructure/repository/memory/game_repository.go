package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/game"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/storage"
)

type gameKey struct {
	region     string
	gameID     int64
	summonerPK int64
}

// GameRepository mirrors the games schema: (region, game_id, summoner_pk)
// and raw_stat_id are unique, and deleting a stat row cascades to its game
// and the game's players.
type GameRepository struct {
	mu         sync.RWMutex
	nextStatID int64
	nextGameID int64
	nextPlayer int64
	stats      map[int64]game.RawStat
	games      map[int64]game.Game
	players    map[int64][]game.Player
	keys       map[gameKey]int64
}

func NewGameRepository() *GameRepository {
	return &GameRepository{
		stats:   make(map[int64]game.RawStat),
		games:   make(map[int64]game.Game),
		players: make(map[int64][]game.Player),
		keys:    make(map[gameKey]int64),
	}
}

func (r *GameRepository) CreateRawStat(_ context.Context, item *game.RawStat) error {
	if item == nil {
		return fmt.Errorf("raw stat is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextStatID++
	item.ID = r.nextStatID
	r.stats[item.ID] = *item
	return nil
}

func (r *GameRepository) DeleteRawStat(_ context.Context, rawStatID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.stats, rawStatID)
	for id, g := range r.games {
		if g.RawStatID != rawStatID {
			continue
		}
		delete(r.games, id)
		delete(r.players, id)
		delete(r.keys, keyOf(g))
	}
	return nil
}

func (r *GameRepository) CreateGame(_ context.Context, item *game.Game) error {
	if item == nil {
		return fmt.Errorf("game is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.stats[item.RawStatID]; !ok {
		return fmt.Errorf("insert game game_id=%d: raw stat %d does not exist", item.GameID, item.RawStatID)
	}
	key := keyOf(*item)
	if _, exists := r.keys[key]; exists {
		return fmt.Errorf("insert game game_id=%d summoner_pk=%d: %w", item.GameID, item.SummonerPK, storage.ErrDuplicateKey)
	}
	for _, g := range r.games {
		if g.RawStatID == item.RawStatID {
			return fmt.Errorf("insert game raw_stat_id=%d: %w", item.RawStatID, storage.ErrDuplicateKey)
		}
	}

	r.nextGameID++
	item.ID = r.nextGameID
	r.games[item.ID] = *item
	r.keys[key] = item.ID
	return nil
}

func (r *GameRepository) CreatePlayers(_ context.Context, items []game.Player) error {
	if len(items) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range items {
		if _, ok := r.games[p.GamePK]; !ok {
			return fmt.Errorf("insert game players: game %d does not exist", p.GamePK)
		}
	}
	for _, p := range items {
		r.nextPlayer++
		p.ID = r.nextPlayer
		r.players[p.GamePK] = append(r.players[p.GamePK], p)
	}
	return nil
}

func (r *GameRepository) ListBySummoner(_ context.Context, summonerPK int64, page, pageSize int) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]game.Game, 0)
	for _, g := range r.games {
		if g.SummonerPK == summonerPK {
			all = append(all, g)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreateDate != all[j].CreateDate {
			return all[i].CreateDate > all[j].CreateDate
		}
		return all[i].ID > all[j].ID
	})

	start, end := pageBounds(len(all), page, pageSize)
	return append([]game.Game(nil), all[start:end]...), nil
}

func (r *GameRepository) ListByGameID(_ context.Context, region string, gameID int64) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0)
	for _, g := range r.games {
		if g.Region == region && g.GameID == gameID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *GameRepository) GetRawStat(_ context.Context, rawStatID int64) (game.RawStat, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stat, ok := r.stats[rawStatID]
	return stat, ok, nil
}

func (r *GameRepository) ListPlayers(_ context.Context, gamePK int64) ([]game.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]game.Player(nil), r.players[gamePK]...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })
	return out, nil
}

func (r *GameRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats = make(map[int64]game.RawStat)
	r.games = make(map[int64]game.Game)
	r.players = make(map[int64][]game.Player)
	r.keys = make(map[gameKey]int64)
	return nil
}

func keyOf(g game.Game) gameKey {
	return gameKey{region: g.Region, gameID: g.GameID, summonerPK: g.SummonerPK}
}
