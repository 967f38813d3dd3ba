package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"go-identity-service/internal/model"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) Create(ctx context.Context, p model.Profile) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO userprofile (fullname, phonenumber, address, bio, userid)
		 VALUES ($1, $2, $3, $4, $5)`,
		p.FullName, p.PhoneNumber, p.Address, p.Bio, p.UserID)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]model.Profile, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT fullname, phonenumber, address, bio, userid FROM userprofile`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]model.Profile, 0)
	for rows.Next() {
		var p model.Profile
		if err := rows.Scan(&p.FullName, &p.PhoneNumber, &p.Address, &p.Bio, &p.UserID); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// UpdatePartial writes only the fields present on upd and reports how many
// rows matched. Zero rows affected is not an error at this layer.
func (r *ProfileRepository) UpdatePartial(ctx context.Context, upd model.ProfileUpdate) (int64, error) {
	query, args, err := buildProfileUpdate(upd)
	if err != nil {
		return 0, err
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update profile: %w", err)
	}
	return tag.RowsAffected(), nil
}

// buildProfileUpdate assembles the UPDATE statement for the fields present
// on upd. Fields are visited in a fixed order (fullname, phonenumber,
// address, bio) so parameter numbering is deterministic, and values are only
// ever bound as positional parameters; the column names are internal
// constants, never caller input. The userid filter binds last, using the
// running index.
func buildProfileUpdate(upd model.ProfileUpdate) (string, []any, error) {
	fields := []struct {
		column string
		value  *string
	}{
		{"fullname", upd.FullName},
		{"phonenumber", upd.PhoneNumber},
		{"address", upd.Address},
		{"bio", upd.Bio},
	}

	assignments := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	index := 1
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		assignments = append(assignments, fmt.Sprintf("%s = $%d", f.column, index))
		args = append(args, *f.value)
		index++
	}

	if len(assignments) == 0 {
		return "", nil, model.ErrNoUpdateFields
	}

	query := fmt.Sprintf("UPDATE userprofile SET %s WHERE userid = $%d",
		strings.Join(assignments, ", "), index)
	args = append(args, upd.UserID)

	return query, args, nil
}
