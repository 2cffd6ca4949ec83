package summoner

import "context"

// Repository describes summoner persistence needs from use cases.
// Create and Update return storage.ErrDuplicateKey when (summoner_id, region)
// is already taken.
type Repository interface {
	GetByNormalizedName(ctx context.Context, region, normalizedName string) (Summoner, bool, error)
	GetBySummonerID(ctx context.Context, region string, summonerID int64) (Summoner, bool, error)
	ListBySummonerIDs(ctx context.Context, region string, summonerIDs []int64) ([]Summoner, error)
	List(ctx context.Context, filter Filter) ([]Summoner, error)
	Create(ctx context.Context, item *Summoner) error
	Update(ctx context.Context, item Summoner) error
	DeleteAll(ctx context.Context) error
}
