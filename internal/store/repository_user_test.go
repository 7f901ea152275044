package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ndanilkin/go-vault-server/internal/logger"
	"github.com/ndanilkin/go-vault-server/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{
	"id", "email", "name", "email_new", "email_new_token",
	"password_hash", "salt", "password_iterations", "password_hint",
	"encrypted_key", "private_key", "public_key",
	"kdf_type", "kdf_iterations", "kdf_memory", "kdf_parallelism",
	"security_stamp", "stale_token_kinds", "api_key",
	"verified_at", "last_verifying_at", "created_at", "updated_at",
}

func userRow(user models.User) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userRowColumns).AddRow(
		user.ID, user.Email, user.Name, user.EmailNew, user.EmailNewToken,
		user.PasswordHash, user.Salt, user.PasswordIterations, user.PasswordHint,
		user.EncryptedKey, user.PrivateKey, user.PublicKey,
		user.Kdf.Type, user.Kdf.Iterations, user.Kdf.Memory, user.Kdf.Parallelism,
		user.SecurityStamp, strings.Join(user.StaleTokenKinds, ","), user.APIKey,
		user.VerifiedAt, user.LastVerifyingAt, now, now,
	)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		ID:                 "019539a1-0000-7000-8000-000000000001",
		Email:              "john@example.com",
		Name:               "John",
		PasswordHash:       "deadbeef",
		Salt:               "cafe",
		PasswordIterations: 600_000,
		Kdf:                models.Kdf{Type: models.KdfPbkdf2, Iterations: 600_000},
		SecurityStamp:      "stamp-1",
	}

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(userRow(user))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
	if created.Kdf.Iterations != 600_000 {
		t.Errorf("expected kdf iterations 600000, got %d", created.Kdf.Iterations)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, models.User{Email: "john@example.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, models.User{Email: "john@example.com"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	stored := models.User{
		ID:              "019539a1-0000-7000-8000-000000000001",
		Email:           "john@example.com",
		StaleTokenKinds: []string{"verify_email", "rotate_keys"},
	}

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("john@example.com").
		WillReturnRows(userRow(stored))

	found, err := repo.FindUserByEmail(ctx, "John@Example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != stored.ID {
		t.Errorf("expected id %s, got %s", stored.ID, found.ID)
	}
	if len(found.StaleTokenKinds) != 2 || found.StaleTokenKinds[0] != "verify_email" {
		t.Errorf("stale token kinds round-trip broken: %v", found.StaleTokenKinds)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("john@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(ctx, "john@example.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByID_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id"}).AddRow("u1") // wrong shape

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("u1").
		WillReturnRows(rows)

	_, err := repo.FindUserByID(ctx, "u1")
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestSaveUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveUser(ctx, models.User{ID: "u1", Email: "john@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSaveUser_MissingRow(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveUser(ctx, models.User{ID: "ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM users").
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteUser(ctx, "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteUser_MissingRow(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM users").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteUser(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSplitKinds_Empty(t *testing.T) {
	if got := splitKinds(""); got != nil {
		t.Fatalf("expected nil for empty kinds, got %v", got)
	}
	if got := splitKinds("a,b"); len(got) != 2 {
		t.Fatalf("expected 2 kinds, got %v", got)
	}
}
