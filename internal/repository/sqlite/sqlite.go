package sqlite

import (
	"time"

	"github.com/garnizeh/jobboard/internal/db"
	"github.com/garnizeh/jobboard/pkg/logging"
	"github.com/garnizeh/jobboard/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *logging.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.ListingRepo = (*SQLiteRepo)(nil)
var _ repository.HealthChecker = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *logging.Logger) *SQLiteRepo {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}
