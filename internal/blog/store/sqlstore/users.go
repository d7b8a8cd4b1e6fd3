package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
)

// Users implements store.Users.
type Users struct {
	conn
}

func NewUsers(db DBTX, cfg Config) *Users {
	return &Users{conn{db: db, cfg: cfg}}
}

const userColumns = `id, name, email, password_hash, role, is_active, last_login_at, created_at, updated_at`

func (r *Users) scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u         domain.User
		role      string
		lastLogin sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.IsActive,
		&lastLogin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, r.mapError(err)
	}
	u.Role = domain.Role(role)
	u.LastLoginAt = mapNullTimePtr(lastLogin)
	u.CreatedAt = utc(u.CreatedAt)
	u.UpdatedAt = utc(u.UpdatedAt)
	return u, nil
}

func (r *Users) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.scanUser(r.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (r *Users) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.scanUser(r.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email))
}

func (r *Users) EmailTaken(ctx context.Context, email, exceptID string) (bool, error) {
	var n int64
	err := r.queryRow(ctx, `SELECT COUNT(*) FROM users WHERE email = ? AND id <> ?`, email, exceptID).Scan(&n)
	if err != nil {
		return false, r.mapError(err)
	}
	return n > 0, nil
}

func (r *Users) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, string(u.Role), u.IsActive,
		mapOptionalTime(u.LastLoginAt), utc(u.CreatedAt), utc(u.UpdatedAt),
	)
	return err
}

func (r *Users) UpdateProfile(ctx context.Context, id, name, email string, at time.Time) error {
	return r.mustAffect(ctx,
		`UPDATE users SET name = ?, email = ?, updated_at = ? WHERE id = ?`,
		name, email, utc(at), id)
}

func (r *Users) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.mustAffect(ctx, `UPDATE users SET last_login_at = ? WHERE id = ?`, utc(at), id)
}

func (r *Users) DeleteUser(ctx context.Context, id string) error {
	return r.mustAffect(ctx, `DELETE FROM users WHERE id = ?`, id)
}

func (r *Users) IsEmpty(ctx context.Context) (bool, error) {
	var n int64
	if err := r.queryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return false, r.mapError(err)
	}
	return n == 0, nil
}
