package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/mcalvora/leadflow/internal/entity"
)

const DefaultActivityLimit = 20

type ActivityRepository struct {
	DB *sql.DB
}

func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

// Append is a pure insert. Events are never updated or deleted.
func (r *ActivityRepository) Append(ctx context.Context, event *entity.ActivityEvent) error {
	meta := event.Meta
	if meta == nil {
		meta = map[string]string{}
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO activity_events (id, type, title, meta, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err = r.DB.ExecContext(ctx, query,
		event.ID,
		event.Type,
		event.Title,
		metaJSON,
		event.CreatedAt,
	)
	return err
}

func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]entity.ActivityEvent, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	query := `
		SELECT id, type, title, meta, created_at
		FROM activity_events
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []entity.ActivityEvent{}
	for rows.Next() {
		var event entity.ActivityEvent
		var metaJSON []byte
		if err := rows.Scan(
			&event.ID,
			&event.Type,
			&event.Title,
			&metaJSON,
			&event.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(metaJSON) > 0 {
			if err := json.Unmarshal(metaJSON, &event.Meta); err != nil {
				return nil, err
			}
		}
		events = append(events, event)
	}

	return events, rows.Err()
}
