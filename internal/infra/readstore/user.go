package readstore

import (
	"context"

	"washbook/internal/infra"
	"washbook/internal/pkg/pgconv"
	"washbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, role, is_active
		FROM users
		WHERE id = $1`, id).
		Scan(&v.ID, &v.Name, &v.Email, &v.Role, &v.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

// FindActiveByEmail also returns the stored password hash for the login path.
func (r *UserReadStore) FindActiveByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		v    queries.AuthorizedUserView
		hash string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, role, is_active, password_hash
		FROM users
		WHERE email = $1 AND is_active`, email).
		Scan(&v.ID, &v.Name, &v.Email, &v.Role, &v.IsActive, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, hash, nil
}
