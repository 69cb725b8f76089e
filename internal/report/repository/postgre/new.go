package postgre

import (
	"database/sql"

	"report-srv/internal/report/repository"
	"report-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

func New(db *sql.DB, l log.Logger) repository.AggregationRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
