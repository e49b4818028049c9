package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
)

type usersRepo struct {
	q querier
}

const userColumns = `id, email, name, photo_url, role, created_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u        domain.User
		photoURL sql.NullString
		role     sql.NullString
	)
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &photoURL, &role, &u.CreatedAt); err != nil {
		return domain.User{}, err
	}
	u.PhotoURL = mapNullString(photoURL)
	u.Role = mapNullString(role)
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO users (id, email, name, photo_url, role, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Name, mapStringNull(u.PhotoURL), mapStringNull(u.Role), u.CreatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

func (r *usersRepo) SetRole(ctx context.Context, id, role string) (int64, error) {
	return rowsAffected(r.q.ExecContext(ctx,
		`UPDATE users SET role = ? WHERE id = ? AND role IS NOT ?`,
		mapStringNull(role), id, mapStringNull(role),
	))
}

func (r *usersRepo) DeleteUser(ctx context.Context, id string) (int64, error) {
	return rowsAffected(r.q.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id))
}
