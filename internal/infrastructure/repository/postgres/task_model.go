package postgres

import (
	"time"

	qb "github.com/riskibarqy/lol-stats-sync/internal/platform/querybuilder"
)

type syncTaskTableModel struct {
	ID           string     `db:"id"`
	Name         string     `db:"name"`
	State        string     `db:"state"`
	Payload      string     `db:"payload"`
	Result       string     `db:"result"`
	ErrorMessage string     `db:"error_message"`
	Attempts     int        `db:"attempts"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	FinishedAt   *time.Time `db:"finished_at"`
}

var syncTaskColumns = qb.Columns(syncTaskTableModel{})
