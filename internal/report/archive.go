package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/gsmic/internal/database"
	"github.com/at-ishikawa/gsmic/internal/scoring"
	"github.com/at-ishikawa/gsmic/schemas"
)

// ArchivedReport is a row of the accuracy_reports table
type ArchivedReport struct {
	ID                         int64     `db:"id"`
	File                       string    `db:"file"`
	OriginalAccuracy           float64   `db:"original_accuracy"`
	NewAccuracy                float64   `db:"new_accuracy"`
	OriginalIrrelevantAccuracy float64   `db:"original_irrelevant_accuracy"`
	NewIrrelevantAccuracy      float64   `db:"new_irrelevant_accuracy"`
	RecordCount                int       `db:"record_count"`
	CreatedAt                  time.Time `db:"created_at"`
}

// Archive keeps every computed report, unlike the report file which is overwritten.
type Archive interface {
	Save(ctx context.Context, r scoring.Report) error
	FindAll(ctx context.Context) ([]ArchivedReport, error)
}

const insertReportQuery = `INSERT INTO accuracy_reports
(file, original_accuracy, new_accuracy, original_irrelevant_accuracy, new_irrelevant_accuracy, record_count, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`

// DBArchive implements Archive using MySQL.
type DBArchive struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewDBArchive(db *sqlx.DB) *DBArchive {
	return &DBArchive{
		db:  db,
		now: time.Now,
	}
}

// EnsureSchema creates the accuracy_reports table when it does not exist yet
func (a *DBArchive) EnsureSchema(ctx context.Context) error {
	if err := database.Migrate(ctx, a.db, schemas.Migrations); err != nil {
		return fmt.Errorf("database.Migrate > %w", err)
	}
	return nil
}

func (a *DBArchive) Save(ctx context.Context, r scoring.Report) error {
	row := ArchivedReport{
		File:                       r.File,
		OriginalAccuracy:           r.OriginalAccuracy,
		NewAccuracy:                r.NewAccuracy,
		OriginalIrrelevantAccuracy: r.OriginalIrrelevantAccuracy,
		NewIrrelevantAccuracy:      r.NewIrrelevantAccuracy,
		RecordCount:                r.Total,
		CreatedAt:                  a.now().UTC(),
	}

	return database.RunInTx(ctx, a.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, insertReportQuery,
			row.File,
			row.OriginalAccuracy,
			row.NewAccuracy,
			row.OriginalIrrelevantAccuracy,
			row.NewIrrelevantAccuracy,
			row.RecordCount,
			row.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert accuracy report: %w", err)
		}
		return nil
	})
}

func (a *DBArchive) FindAll(ctx context.Context) ([]ArchivedReport, error) {
	var reports []ArchivedReport
	if err := a.db.SelectContext(ctx, &reports, "SELECT * FROM accuracy_reports ORDER BY id"); err != nil {
		return nil, fmt.Errorf("load all accuracy reports: %w", err)
	}
	return reports, nil
}
