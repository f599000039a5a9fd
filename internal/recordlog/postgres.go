package recordlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	apperrors "business-recommender/internal/common/errors"

	"github.com/lib/pq"
)

// MigrationStatements creates the log table and its lookup index.
func MigrationStatements(table string) []string {
	t := pq.QuoteIdentifier(table)
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id           UUID PRIMARY KEY,
			request_id   TEXT NOT NULL,
			algorithm    TEXT NOT NULL,
			strategy     TEXT NOT NULL,
			profile      JSONB NOT NULL,
			template_ids TEXT[] NOT NULL,
			top_score    DOUBLE PRECISION NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL
		)`, t),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (created_at)`,
			pq.QuoteIdentifier(table+"_created_at_idx"), t),
	}
}

type PostgresSink struct {
	db     *sql.DB
	insert string
}

func NewPostgresSink(db *sql.DB, table string) *PostgresSink {
	return &PostgresSink{
		db: db,
		insert: fmt.Sprintf(`INSERT INTO %s (
			id, request_id, algorithm, strategy, profile, template_ids, top_score, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`, pq.QuoteIdentifier(table)),
	}
}

func (s *PostgresSink) Name() string { return "postgres" }

func (s *PostgresSink) Append(ctx context.Context, rec Record) error {
	profileJSON, err := json.Marshal(rec.Profile)
	if err != nil {
		return apperrors.NewRecommendationLogFailedError(s.Name(), err)
	}

	_, err = s.db.ExecContext(ctx, s.insert,
		rec.ID,
		rec.RequestID,
		string(rec.Algorithm),
		rec.Strategy,
		profileJSON,
		pq.Array(rec.TemplateIDs),
		rec.TopScore,
		rec.CreatedAt,
	)
	if err != nil {
		return apperrors.NewRecommendationLogFailedError(s.Name(), err)
	}
	return nil
}
