package repository

import (
	"context"
	"fmt"

	"arena-store/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// activityRepository implements the ActivityRepository interface using PostgreSQL.
type activityRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewActivityRepository creates a new PostgreSQL-backed activity repository.
func NewActivityRepository(pool *pgxpool.Pool, logger zerolog.Logger) ActivityRepository {
	return &activityRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "activity").Logger(),
	}
}

// CreateTx inserts an activity entry within the provided transaction.
func (r *activityRepository) CreateTx(ctx context.Context, tx pgx.Tx, activity *model.Activity) error {
	query := `
		INSERT INTO admin_activities (id, icon, title, subtitle, color, value_label)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := tx.QueryRow(ctx, query,
		activity.ID, activity.Icon, activity.Title, activity.Subtitle,
		activity.Color, activity.ValueLabel,
	).Scan(&activity.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("title", activity.Title).Msg("failed to insert activity")
		return fmt.Errorf("failed to insert activity: %w", err)
	}

	return nil
}

// List retrieves the newest activity entries.
func (r *activityRepository) List(ctx context.Context, limit int) ([]model.Activity, error) {
	query := `
		SELECT id, icon, title, subtitle, color, value_label, created_at
		FROM admin_activities
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error().Err(err).Int("limit", limit).Msg("failed to query activities")
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []model.Activity
	for rows.Next() {
		var a model.Activity
		err := rows.Scan(&a.ID, &a.Icon, &a.Title, &a.Subtitle, &a.Color, &a.ValueLabel, &a.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan activity row")
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating activity rows")
		return nil, fmt.Errorf("error iterating activities: %w", err)
	}

	return activities, nil
}
