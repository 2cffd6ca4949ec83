package querybuilder

import "testing"

type testRow struct {
	ID     int64   `db:"id,readonly"`
	Name   string  `db:"name"`
	Group  *string `db:"item_group"`
	hidden string
	Skip   string `db:"-"`
}

func TestInsertModel_SkipsReadonlyAndUntaggedFields(t *testing.T) {
	group := "boots"
	query, args, err := InsertModel("items", testRow{ID: 9, Name: "Boots", Group: &group, hidden: "x"}, "RETURNING id")
	if err != nil {
		t.Fatalf("insert model: %v", err)
	}
	if query != "INSERT INTO items (name, item_group) VALUES ($1, $2) RETURNING id" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 || args[0] != "Boots" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModels_RendersMultiRowInsert(t *testing.T) {
	rows := []testRow{{Name: "a"}, {Name: "b"}}
	query, args, err := InsertModels("items", rows, "")
	if err != nil {
		t.Fatalf("insert models: %v", err)
	}
	if query != "INSERT INTO items (name, item_group) VALUES ($1, $2), ($3, $4)" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 4 || args[2] != "b" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertModels[testRow]("items", nil, ""); err == nil {
		t.Fatalf("expected error for empty rows")
	}
}

func TestColumns_IncludesReadonly(t *testing.T) {
	cols := Columns(testRow{})
	if len(cols) != 3 || cols[0] != "id" || cols[2] != "item_group" {
		t.Fatalf("unexpected columns: %v", cols)
	}
}
