package game

import "context"

// Repository describes match persistence needs from use cases.
//
// A statistics row owns its game: DeleteRawStat removes the game and its
// players with it. CreateGame returns storage.ErrDuplicateKey when
// (region, game_id, summoner_pk) already exists.
type Repository interface {
	CreateRawStat(ctx context.Context, item *RawStat) error
	DeleteRawStat(ctx context.Context, rawStatID int64) error
	CreateGame(ctx context.Context, item *Game) error
	CreatePlayers(ctx context.Context, items []Player) error

	ListBySummoner(ctx context.Context, summonerPK int64, page, pageSize int) ([]Game, error)
	ListByGameID(ctx context.Context, region string, gameID int64) ([]Game, error)
	GetRawStat(ctx context.Context, rawStatID int64) (RawStat, bool, error)
	ListPlayers(ctx context.Context, gamePK int64) ([]Player, error)

	DeleteAll(ctx context.Context) error
}
