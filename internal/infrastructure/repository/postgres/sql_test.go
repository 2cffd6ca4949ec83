package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/riskibarqy/lol-stats-sync/internal/domain/storage"
)

func TestMapWriteError(t *testing.T) {
	t.Run("maps unique violation to duplicate key", func(t *testing.T) {
		err := mapWriteError("insert game", fmt.Errorf("exec: %w", &pq.Error{Code: "23505", Constraint: "uq_games_region_game_owner"}))
		if !errors.Is(err, storage.ErrDuplicateKey) {
			t.Fatalf("expected ErrDuplicateKey, got %v", err)
		}
	})

	t.Run("keeps other errors", func(t *testing.T) {
		base := &pq.Error{Code: "23503"}
		err := mapWriteError("insert game", base)
		if errors.Is(err, storage.ErrDuplicateKey) {
			t.Fatalf("fk violation must not map to duplicate key")
		}
		var pqErr *pq.Error
		if !errors.As(err, &pqErr) {
			t.Fatalf("expected wrapped pq error, got %v", err)
		}
	})

	t.Run("nil stays nil", func(t *testing.T) {
		if err := mapWriteError("noop", nil); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(errors.New("boom")) {
		t.Fatalf("unexpected not found")
	}
}

func TestNormalizePage(t *testing.T) {
	page, size := normalizePage(0, 0)
	if page != 1 || size != defaultPageSize {
		t.Fatalf("unexpected defaults page=%d size=%d", page, size)
	}
	page, size = normalizePage(3, 10)
	if page != 3 || size != 10 {
		t.Fatalf("unexpected page=%d size=%d", page, size)
	}
}

func TestNullableRoundTrip(t *testing.T) {
	if nullInt64Ptr(int64PtrToNull(nil)) != nil {
		t.Fatalf("expected nil to stay nil")
	}
	v := int64(1420070400000)
	got := nullInt64Ptr(int64PtrToNull(&v))
	if got == nil || *got != v {
		t.Fatalf("unexpected round trip: %v", got)
	}
	if nullStringPtr(stringPtrToNull(nil)) != nil {
		t.Fatalf("expected nil string to stay nil")
	}
}

func TestTaskJSONObjectHelpers(t *testing.T) {
	raw, err := marshalJSONObject(nil)
	if err != nil || raw != "{}" {
		t.Fatalf("expected empty object, got %q err=%v", raw, err)
	}

	raw, err = marshalJSONObject(map[string]any{"created": 7})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := unmarshalJSONObject(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["created"] != float64(7) {
		t.Fatalf("unexpected decoded value: %v", decoded)
	}

	var empty map[string]any
	if err := unmarshalJSONObject("{}", &empty); err != nil || empty != nil {
		t.Fatalf("expected nil map for empty object, got %v err=%v", empty, err)
	}
}
