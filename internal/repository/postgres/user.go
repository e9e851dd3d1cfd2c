package postgres

import (
	"context"
	"database/sql"

	"github.com/bizledger/bizledger/internal/domain/user"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/postgres"
	"github.com/bizledger/bizledger/internal/types"
)

type userRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewUserRepository(db postgres.IClient, log *logger.Logger) user.Repository {
	return &userRepository{db: db, logger: log}
}

func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (
			id, email, name, password_hash, role, department, phone, client_id,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14
		)`

	_, err := r.db.Conn(ctx).ExecContext(ctx, query,
		u.ID, u.Email, u.Name, u.PasswordHash, u.Role, u.Department,
		u.Phone, u.ClientID,
		u.TenantID, u.Status, u.CreatedAt, u.UpdatedAt, u.CreatedBy, u.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create user").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *userRepository) Get(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	query := `SELECT * FROM users WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &u, query, id, types.GetTenantID(ctx))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("user not found").
				WithHintf("User with ID %s was not found", id).
				WithReportableDetails(map[string]any{"user_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get user").
			Mark(ierr.ErrDatabase)
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	query := `SELECT * FROM users WHERE email = $1 AND tenant_id = $2 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &u, query, email, types.GetTenantID(ctx))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("user not found").
				WithHint("No user exists with this email").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get user by email").
			Mark(ierr.ErrDatabase)
	}
	return &u, nil
}

func (r *userRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*user.User, error) {
	users := make([]*user.User, 0)
	query := `SELECT * FROM users WHERE tenant_id = $1 AND status != 'deleted'` +
		listSuffix(filter, "created_at", "email", "name", "role", "department")

	err := r.db.Conn(ctx).SelectContext(ctx, &users, query, types.GetTenantID(ctx))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list users").
			Mark(ierr.ErrDatabase)
	}
	return users, nil
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM users WHERE tenant_id = $1 AND status != 'deleted'`

	err := r.db.Conn(ctx).GetContext(ctx, &count, query, types.GetTenantID(ctx))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count users").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *userRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users SET
			email = $3, name = $4, password_hash = $5, role = $6,
			department = $7, phone = $8, client_id = $9,
			updated_at = $10, updated_by = $11
		WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query,
		u.ID, types.GetTenantID(ctx), u.Email, u.Name, u.PasswordHash,
		u.Role, u.Department, u.Phone, u.ClientID, u.UpdatedAt, u.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update user").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "user", u.ID)
}

// Delete soft deletes the user so historical records keep a valid
// reference.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE users SET status = $3, updated_at = NOW(), updated_by = $4
		WHERE id = $1 AND tenant_id = $2 AND status != 'deleted'`

	result, err := r.db.Conn(ctx).ExecContext(ctx, query,
		id, types.GetTenantID(ctx), types.StatusDeleted, types.GetUserID(ctx))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete user").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, "user", id)
}
