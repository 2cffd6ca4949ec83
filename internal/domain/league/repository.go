package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	// FindOrCreate returns the stored league for its natural key, inserting it when absent.
	FindOrCreate(ctx context.Context, item League) (League, error)
	// ReplaceEntries deletes every entry of leagueID and inserts entries in one transaction.
	ReplaceEntries(ctx context.Context, leagueID int64, entries []Entry) error

	List(ctx context.Context, filter Filter) ([]League, error)
	Get(ctx context.Context, region, queue, tier, name string) (League, bool, error)
	ListEntries(ctx context.Context, leagueID int64) ([]Entry, error)
	ListEntriesByPlayerOrTeamID(ctx context.Context, region, playerOrTeamID string) ([]Entry, error)

	DeleteAll(ctx context.Context) error
}
