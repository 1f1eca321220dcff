package repository

import (
	"context"
	"fmt"

	"arena-store/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const bannerColumns = `id, tag, title, subtitle, image_url,
		button_primary_text, button_primary_link,
		button_secondary_text, button_secondary_link,
		priority, active, display_duration, created_at, updated_at`

// bannerRepository implements the BannerRepository interface using PostgreSQL.
type bannerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewBannerRepository creates a new PostgreSQL-backed banner repository.
func NewBannerRepository(pool *pgxpool.Pool, logger zerolog.Logger) BannerRepository {
	return &bannerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "banner").Logger(),
	}
}

func (r *bannerRepository) list(ctx context.Context, where string) ([]model.Banner, error) {
	query := `
		SELECT ` + bannerColumns + `
		FROM banners
		` + where + `
		ORDER BY priority, created_at
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query banners")
		return nil, fmt.Errorf("failed to query banners: %w", err)
	}
	defer rows.Close()

	var banners []model.Banner
	for rows.Next() {
		var b model.Banner
		err := rows.Scan(
			&b.ID, &b.Tag, &b.Title, &b.Subtitle, &b.ImageURL,
			&b.ButtonPrimaryText, &b.ButtonPrimaryLink,
			&b.ButtonSecondaryText, &b.ButtonSecondaryLink,
			&b.Priority, &b.Active, &b.DisplayDuration, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan banner row")
			return nil, fmt.Errorf("failed to scan banner: %w", err)
		}
		banners = append(banners, b)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating banner rows")
		return nil, fmt.Errorf("error iterating banners: %w", err)
	}

	return banners, nil
}

// ListActive retrieves active banners ordered by priority.
func (r *bannerRepository) ListActive(ctx context.Context) ([]model.Banner, error) {
	return r.list(ctx, "WHERE active = TRUE")
}

// List retrieves all banners ordered by priority.
func (r *bannerRepository) List(ctx context.Context) ([]model.Banner, error) {
	return r.list(ctx, "")
}

// Create inserts a new banner.
func (r *bannerRepository) Create(ctx context.Context, b *model.Banner) error {
	query := `
		INSERT INTO banners (id, tag, title, subtitle, image_url,
			button_primary_text, button_primary_link,
			button_secondary_text, button_secondary_link,
			priority, active, display_duration)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		b.ID, b.Tag, b.Title, b.Subtitle, b.ImageURL,
		b.ButtonPrimaryText, b.ButtonPrimaryLink,
		b.ButtonSecondaryText, b.ButtonSecondaryLink,
		b.Priority, b.Active, b.DisplayDuration,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("title", b.Title).Msg("failed to insert banner")
		return fmt.Errorf("failed to insert banner: %w", err)
	}

	r.logger.Info().Str("banner_id", b.ID.String()).Str("title", b.Title).Msg("banner created")
	return nil
}

// Update rewrites an existing banner.
func (r *bannerRepository) Update(ctx context.Context, b *model.Banner) error {
	query := `
		UPDATE banners
		SET tag = $2, title = $3, subtitle = $4, image_url = $5,
			button_primary_text = $6, button_primary_link = $7,
			button_secondary_text = $8, button_secondary_link = $9,
			priority = $10, active = $11, display_duration = $12,
			updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		b.ID, b.Tag, b.Title, b.Subtitle, b.ImageURL,
		b.ButtonPrimaryText, b.ButtonPrimaryLink,
		b.ButtonSecondaryText, b.ButtonSecondaryLink,
		b.Priority, b.Active, b.DisplayDuration,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("banner_id", b.ID.String()).Msg("banner not found for update")
			return model.ErrBannerNotFound
		}
		r.logger.Error().Err(err).Str("banner_id", b.ID.String()).Msg("failed to update banner")
		return fmt.Errorf("failed to update banner: %w", err)
	}

	r.logger.Info().Str("banner_id", b.ID.String()).Msg("banner updated")
	return nil
}

// Delete removes a banner by its ID.
func (r *bannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM banners WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Str("banner_id", id.String()).Msg("failed to delete banner")
		return fmt.Errorf("failed to delete banner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBannerNotFound
	}

	r.logger.Info().Str("banner_id", id.String()).Msg("banner deleted")
	return nil
}
