package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	GetByFullID(ctx context.Context, region, fullID string) (Team, bool, error)
	// Replace deletes any stored (region, full_id) team with its children and
	// inserts snapshot in one transaction. A concurrent insert of the same key
	// surfaces storage.ErrDuplicateKey.
	Replace(ctx context.Context, snapshot Snapshot) (Team, error)
	GetSnapshot(ctx context.Context, region, fullID string) (Snapshot, bool, error)
	List(ctx context.Context, filter Filter) ([]Team, error)
	DeleteAll(ctx context.Context) error
}
