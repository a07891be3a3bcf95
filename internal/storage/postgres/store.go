package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/hongminglow/escola-be/internal/models"
	"github.com/hongminglow/escola-be/internal/storage"
	"github.com/hongminglow/escola-be/internal/storage/postgres/migrations"
)

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

const uniqueViolation = "23505"

// Store provides Postgres-backed persistence for users and classes.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore runs migrations and opens a connection pool.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	if err := migrations.Up(databaseURL); err != nil {
		return nil, err
	}

	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse database url")
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "connect to database")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "ping database")
	}

	return &Store{pool: pool}, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// CreateUser inserts a new user row. Empty optional fields are stored as NULL.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
		INSERT INTO users (name, email, identity_number, password_hash, phone, postal_code,
			street, district, city, state, image, user_type_id)
		VALUES (NULLIF($1, ''), NULLIF($2, ''), $3, $4, NULLIF($5, ''), NULLIF($6, ''),
			NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, ''), $12)
		RETURNING ` + userColumns
	row := s.pool.QueryRow(ctx, query,
		user.Name, user.Email, user.IdentityNumber, user.PasswordHash, user.Phone, user.PostalCode,
		user.Street, user.District, user.City, user.State, user.Image, user.UserTypeID,
	)
	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, errors.Wrap(err, "insert user")
	}
	return created, nil
}

// FindUserByIdentityNumber fetches a user by exact identity number.
func (s *Store) FindUserByIdentityNumber(ctx context.Context, identityNumber string) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE identity_number = $1`
	user, err := scanUser(s.pool.QueryRow(ctx, query, identityNumber))
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return models.User{}, errors.Wrap(err, "select user")
	}
	return user, err
}

// CreateClass inserts a new class row. Dates are cast from their text form.
func (s *Store) CreateClass(ctx context.Context, class models.Class) (models.Class, error) {
	const query = `
		INSERT INTO classes (code, description, start_date, end_date, image)
		VALUES ($1, NULLIF($2, ''), NULLIF($3::text, '')::date, NULLIF($4::text, '')::date, NULLIF($5, ''))
		RETURNING ` + classColumns
	row := s.pool.QueryRow(ctx, query, class.Code, class.Description, class.StartDate, class.EndDate, class.Image)
	created, err := scanClass(row)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Class{}, storage.ErrAlreadyExists
		}
		return models.Class{}, errors.Wrap(err, "insert class")
	}
	return created, nil
}

// FindClassByCode fetches a class by exact code.
func (s *Store) FindClassByCode(ctx context.Context, code string) (models.Class, error) {
	const query = `SELECT ` + classColumns + ` FROM classes WHERE code = $1`
	class, err := scanClass(s.pool.QueryRow(ctx, query, code))
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return models.Class{}, errors.Wrap(err, "select class")
	}
	return class, err
}

const userColumns = `id, COALESCE(name, ''), COALESCE(email, ''), identity_number, password_hash,
	COALESCE(phone, ''), COALESCE(postal_code, ''), COALESCE(street, ''), COALESCE(district, ''),
	COALESCE(city, ''), COALESCE(state, ''), COALESCE(image, ''), user_type_id, created_at`

const classColumns = `id, code, COALESCE(description, ''),
	COALESCE(to_char(start_date, 'YYYY-MM-DD'), ''), COALESCE(to_char(end_date, 'YYYY-MM-DD'), ''),
	COALESCE(image, ''), created_at`

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.IdentityNumber, &user.PasswordHash,
		&user.Phone, &user.PostalCode, &user.Street, &user.District, &user.City, &user.State,
		&user.Image, &user.UserTypeID, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func scanClass(row pgx.Row) (models.Class, error) {
	var class models.Class
	err := row.Scan(&class.ID, &class.Code, &class.Description, &class.StartDate, &class.EndDate,
		&class.Image, &class.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Class{}, storage.ErrNotFound
		}
		return models.Class{}, err
	}
	return class, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
