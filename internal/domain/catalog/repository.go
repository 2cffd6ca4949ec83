package catalog

import "context"

// Repository stores the static catalogs. Replace* swaps the full table
// contents atomically.
type Repository interface {
	ReplaceChampions(ctx context.Context, items []Champion) error
	ReplaceItems(ctx context.Context, items []Item) error
	ReplaceSummonerSpells(ctx context.Context, items []SummonerSpell) error

	ListChampions(ctx context.Context) ([]Champion, error)
	ListItems(ctx context.Context) ([]Item, error)
	ListSummonerSpells(ctx context.Context) ([]SummonerSpell, error)

	ListChampionsByIDs(ctx context.Context, ids []int) ([]Champion, error)
	ListSummonerSpellsByIDs(ctx context.Context, ids []int) ([]SummonerSpell, error)

	GetChampionByName(ctx context.Context, name string) (Champion, bool, error)
	GetItemByName(ctx context.Context, name string) (Item, bool, error)
	GetSummonerSpellByName(ctx context.Context, name string) (SummonerSpell, bool, error)
}
