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

// profileRepository implements the ProfileRepository interface using PostgreSQL.
type profileRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProfileRepository creates a new PostgreSQL-backed profile repository.
func NewProfileRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProfileRepository {
	return &profileRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "profile").Logger(),
	}
}

// GetByID retrieves a profile with its addresses.
func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	return r.getBy(ctx, "id = $1", id)
}

// GetByEmail retrieves a profile by email with its addresses.
func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	return r.getBy(ctx, "email = $1", email)
}

func (r *profileRepository) getBy(ctx context.Context, where string, arg any) (*model.Profile, error) {
	query := `
		SELECT id, name, email, phone, tax_id, role, created_at, updated_at
		FROM profiles
		WHERE ` + where

	var p model.Profile
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.Name, &p.Email, &p.Phone, &p.TaxID, &p.Role,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("where", where).Msg("profile not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query profile")
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	addresses, err := r.listAddresses(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Addresses = addresses

	return &p, nil
}

func (r *profileRepository) listAddresses(ctx context.Context, profileID uuid.UUID) ([]model.Address, error) {
	query := `
		SELECT id, profile_id, label, street, number, district, city, state,
			postal_code, is_default, created_at
		FROM addresses
		WHERE profile_id = $1
		ORDER BY is_default DESC, created_at
	`

	rows, err := r.pool.Query(ctx, query, profileID)
	if err != nil {
		r.logger.Error().Err(err).Str("profile_id", profileID.String()).Msg("failed to query addresses")
		return nil, fmt.Errorf("failed to query addresses: %w", err)
	}
	defer rows.Close()

	var addresses []model.Address
	for rows.Next() {
		var a model.Address
		err := rows.Scan(
			&a.ID, &a.ProfileID, &a.Label, &a.Street, &a.Number, &a.District,
			&a.City, &a.State, &a.PostalCode, &a.IsDefault, &a.CreatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan address row")
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}
		addresses = append(addresses, a)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating address rows")
		return nil, fmt.Errorf("error iterating addresses: %w", err)
	}

	return addresses, nil
}

// Update rewrites a profile's editable account data.
func (r *profileRepository) Update(ctx context.Context, p *model.Profile) error {
	query := `
		UPDATE profiles
		SET name = $2, phone = $3, tax_id = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query, p.ID, p.Name, p.Phone, p.TaxID).Scan(&p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("profile_id", p.ID.String()).Msg("profile not found for update")
			return model.ErrProfileNotFound
		}
		r.logger.Error().Err(err).Str("profile_id", p.ID.String()).Msg("failed to update profile")
		return fmt.Errorf("failed to update profile: %w", err)
	}

	r.logger.Info().Str("profile_id", p.ID.String()).Msg("profile updated")
	return nil
}

// AddAddress inserts an address. The first address of a profile becomes
// the default; an insert flagged as default demotes every other address.
func (r *profileRepository) AddAddress(ctx context.Context, addr *model.Address) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
				r.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	var existing int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM addresses WHERE profile_id = $1`,
		addr.ProfileID).Scan(&existing)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count addresses")
		return fmt.Errorf("failed to count addresses: %w", err)
	}

	if existing == 0 {
		addr.IsDefault = true
	}
	if addr.IsDefault {
		_, err = tx.Exec(ctx,
			`UPDATE addresses SET is_default = FALSE WHERE profile_id = $1`,
			addr.ProfileID)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to clear default addresses")
			return fmt.Errorf("failed to clear default addresses: %w", err)
		}
	}

	insert := `
		INSERT INTO addresses (id, profile_id, label, street, number, district,
			city, state, postal_code, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`
	err = tx.QueryRow(ctx, insert,
		addr.ID, addr.ProfileID, addr.Label, addr.Street, addr.Number, addr.District,
		addr.City, addr.State, addr.PostalCode, addr.IsDefault,
	).Scan(&addr.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("profile_id", addr.ProfileID.String()).Msg("failed to insert address")
		return fmt.Errorf("failed to insert address: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Info().
		Str("profile_id", addr.ProfileID.String()).
		Str("address_id", addr.ID.String()).
		Bool("is_default", addr.IsDefault).
		Msg("address added")

	return nil
}

// UpdateAddress rewrites an address's fields, leaving the default flag
// untouched.
func (r *profileRepository) UpdateAddress(ctx context.Context, addr *model.Address) error {
	query := `
		UPDATE addresses
		SET label = $3, street = $4, number = $5, district = $6,
			city = $7, state = $8, postal_code = $9
		WHERE id = $1 AND profile_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		addr.ID, addr.ProfileID, addr.Label, addr.Street, addr.Number, addr.District,
		addr.City, addr.State, addr.PostalCode)
	if err != nil {
		r.logger.Error().Err(err).Str("address_id", addr.ID.String()).Msg("failed to update address")
		return fmt.Errorf("failed to update address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAddressNotFound
	}

	return nil
}

// DeleteAddress removes an address. Deleting the default promotes the
// oldest remaining address.
func (r *profileRepository) DeleteAddress(ctx context.Context, profileID, addressID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
				r.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	var wasDefault bool
	err = tx.QueryRow(ctx,
		`DELETE FROM addresses WHERE id = $1 AND profile_id = $2 RETURNING is_default`,
		addressID, profileID).Scan(&wasDefault)
	if err != nil {
		if err == pgx.ErrNoRows {
			err = model.ErrAddressNotFound
			return err
		}
		r.logger.Error().Err(err).Str("address_id", addressID.String()).Msg("failed to delete address")
		return fmt.Errorf("failed to delete address: %w", err)
	}

	if wasDefault {
		_, err = tx.Exec(ctx, `
			UPDATE addresses SET is_default = TRUE
			WHERE id = (
				SELECT id FROM addresses
				WHERE profile_id = $1
				ORDER BY created_at
				LIMIT 1
			)
		`, profileID)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to promote replacement default address")
			return fmt.Errorf("failed to promote replacement default address: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Info().
		Str("profile_id", profileID.String()).
		Str("address_id", addressID.String()).
		Msg("address deleted")

	return nil
}

// SetDefaultAddress marks one address as default and clears the flag on
// every other address of the profile.
func (r *profileRepository) SetDefaultAddress(ctx context.Context, profileID, addressID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
				r.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	_, err = tx.Exec(ctx,
		`UPDATE addresses SET is_default = FALSE WHERE profile_id = $1`,
		profileID)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to clear default addresses")
		return fmt.Errorf("failed to clear default addresses: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE addresses SET is_default = TRUE WHERE id = $1 AND profile_id = $2`,
		addressID, profileID)
	if err != nil {
		r.logger.Error().Err(err).Str("address_id", addressID.String()).Msg("failed to set default address")
		return fmt.Errorf("failed to set default address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		err = model.ErrAddressNotFound
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Info().
		Str("profile_id", profileID.String()).
		Str("address_id", addressID.String()).
		Msg("default address changed")

	return nil
}

// ListClients summarises all profiles with their order statistics.
func (r *profileRepository) ListClients(ctx context.Context) ([]model.Client, error) {
	query := `
		SELECT p.id, p.name, p.email,
			COUNT(o.id) AS orders_count,
			COALESCE(SUM(o.total_amount), 0) AS total_spent,
			MAX(o.created_at) AS last_order_at
		FROM profiles p
		LEFT JOIN orders o ON o.user_id = p.id
		GROUP BY p.id, p.name, p.email
		ORDER BY total_spent DESC, p.name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query clients")
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	var clients []model.Client
	for rows.Next() {
		var c model.Client
		err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.OrdersCount, &c.TotalSpent, &c.LastOrderAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan client row")
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating client rows")
		return nil, fmt.Errorf("error iterating clients: %w", err)
	}

	return clients, nil
}
