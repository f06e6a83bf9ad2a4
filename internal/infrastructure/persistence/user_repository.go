package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/userdesk/backend/internal/domain/models"
	apperrors "github.com/userdesk/backend/pkg/errors"
	"github.com/userdesk/backend/pkg/utils"
)

// UserRepository is the SQL implementation of ports.UserRepository and
// ports.CredentialStore. It assigns identifiers on save.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = "id, name, email, password, is_admin, is_active, created_date, last_login_date"

// MySQL error 1062: duplicate entry for a unique key.
const mysqlDuplicateEntry = 1062

// Get fetches a user by ID. Returns (nil, nil) when no row matches.
func (r *UserRepository) Get(ctx context.Context, id string) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ? LIMIT 1", userColumns, TableUsers)
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// FindByEmail fetches a user by email. Returns (nil, nil) when no row matches.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE email = ? LIMIT 1", userColumns, TableUsers)
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

// Save inserts a new user and returns the assigned identifier. An empty
// incoming ID is replaced with a fresh UUID; CreatedDate is stamped here.
func (r *UserRepository) Save(ctx context.Context, user *models.User) (string, error) {
	if user.ID == "" {
		user.ID = utils.GenerateID()
	}
	if user.CreatedDate.IsZero() {
		user.CreatedDate = time.Now()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, email, password, is_admin, is_active, created_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`, TableUsers)

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.IsAdmin, user.IsActive, user.CreatedDate)
	if err != nil {
		// Duplicate key on the email unique index: a concurrent insert won
		// the race against the pre-insert existence check.
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return "", apperrors.NewConflictError("User", "email", user.Email)
		}
		return "", err
	}
	return user.ID, nil
}

// Delete removes a user row, reporting whether one matched.
func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", TableUsers)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// FindAll retrieves all users, newest first.
func (r *UserRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY created_date DESC", userColumns, TableUsers)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		u, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// EmailExists reports whether any user has the given email.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE email = ?)", TableUsers)
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// UpdatePassword stores a new password hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	query := fmt.Sprintf("UPDATE %s SET password = ? WHERE id = ?", TableUsers)
	_, err := r.db.ExecContext(ctx, query, passwordHash, id)
	return err
}

// TouchLastLogin records the time of a successful login.
func (r *UserRepository) TouchLastLogin(ctx context.Context, id string) error {
	query := fmt.Sprintf("UPDATE %s SET last_login_date = ? WHERE id = ?", TableUsers)
	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	u, err := scanUserRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return u, err
}

func scanUserRow(row rowScanner) (*models.User, error) {
	var u models.User
	var password sql.NullString
	var lastLogin sql.NullTime

	if err := row.Scan(&u.ID, &u.Name, &u.Email, &password, &u.IsAdmin, &u.IsActive, &u.CreatedDate, &lastLogin); err != nil {
		return nil, err
	}
	u.PasswordHash = password.String
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLoginDate = &t
	}
	return &u, nil
}
