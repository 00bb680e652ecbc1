package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
)

// MigrationReport describes what Migrate changed.
type MigrationReport struct {
	// SchemaFrom and SchemaTo are the goose versions before and after.
	SchemaFrom, SchemaTo int64
	// QueueApplied lists the river migration versions applied by this run.
	QueueApplied []int
}

// Migrate brings the application schema and the river job tables to their
// latest versions. The goose files are read from dir inside fsys. Running it
// again on an up to date database changes nothing.
func (p *PgSQL) Migrate(ctx context.Context, fsys fs.FS, dir string) (MigrationReport, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return MigrationReport{}, errors.New("migrations cannot run inside a transaction")
	}

	var report MigrationReport

	goose.SetBaseFS(fsys)
	if err := goose.SetDialect("postgres"); err != nil {
		return report, fmt.Errorf("could not set goose dialect: %w", err)
	}
	from, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return report, fmt.Errorf("could not read schema version: %w", err)
	}
	report.SchemaFrom = from
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return report, fmt.Errorf("could not migrate schema: %w", err)
	}
	to, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return report, fmt.Errorf("could not read schema version: %w", err)
	}
	report.SchemaTo = to

	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return report, fmt.Errorf("could not create queue migrator: %w", err)
	}
	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return report, fmt.Errorf("could not migrate queue tables: %w", err)
	}
	for _, v := range res.Versions {
		report.QueueApplied = append(report.QueueApplied, v.Version)
	}

	return report, nil
}
