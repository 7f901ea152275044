package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/ndanilkin/go-vault-server/internal/logger"
	"github.com/ndanilkin/go-vault-server/models"
)

func newTestAuthRequestRepo(t *testing.T) (*authRequestRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &authRequestRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

var authRequestRowColumns = []string{
	"id", "user_id", "request_device_id", "request_device_type", "request_ip",
	"access_code", "public_key", "approved", "enc_key", "master_password_hash",
	"response_device_id", "response_date", "created_at",
}

func authRequestRow(request models.AuthRequest) *sqlmock.Rows {
	var responseDeviceID any
	if request.ResponseDeviceID != "" {
		responseDeviceID = request.ResponseDeviceID
	}
	return sqlmock.NewRows(authRequestRowColumns).AddRow(
		request.ID, request.UserID, request.RequestDeviceID, request.RequestDeviceType,
		request.RequestIP, request.AccessCode, request.PublicKey, request.Approved,
		request.EncKey, request.MasterPasswordHash, responseDeviceID,
		request.ResponseDate, time.Now(),
	)
}

func TestCreateAuthRequest_Success(t *testing.T) {
	repo, mock, db := newTestAuthRequestRepo(t)
	defer db.Close()

	ctx := context.Background()
	request := models.AuthRequest{
		ID:                "019539a1-0000-7000-8000-00000000000a",
		UserID:            "u1",
		RequestDeviceID:   "dev-1",
		RequestDeviceType: models.DeviceTypeAndroid,
		RequestIP:         "203.0.113.7",
		AccessCode:        "code-123",
		PublicKey:         "pub",
	}

	mock.ExpectQuery("INSERT INTO auth_requests").
		WillReturnRows(authRequestRow(request))

	created, err := repo.CreateAuthRequest(ctx, request)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created.Pending() {
		t.Error("freshly created request must be pending")
	}
	if created.RequestIP != request.RequestIP {
		t.Errorf("expected ip %s, got %s", request.RequestIP, created.RequestIP)
	}
}

func TestFindAuthRequestByIDAndUser_NotFound(t *testing.T) {
	repo, mock, db := newTestAuthRequestRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM auth_requests").
		WithArgs("req-1", "other-user").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindAuthRequestByIDAndUser(ctx, "req-1", "other-user")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindAuthRequestByID_Approved(t *testing.T) {
	repo, mock, db := newTestAuthRequestRepo(t)
	defer db.Close()

	ctx := context.Background()
	approved := true
	responded := time.Now()
	request := models.AuthRequest{
		ID:               "req-1",
		UserID:           "u1",
		Approved:         &approved,
		EncKey:           "wrapped-key",
		ResponseDeviceID: "dev-2",
		ResponseDate:     &responded,
	}

	mock.ExpectQuery("SELECT (.+) FROM auth_requests").
		WithArgs("req-1").
		WillReturnRows(authRequestRow(request))

	found, err := repo.FindAuthRequestByID(ctx, "req-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Pending() {
		t.Error("approved request must not be pending")
	}
	if found.ResponseDeviceID != "dev-2" {
		t.Errorf("expected response device dev-2, got %s", found.ResponseDeviceID)
	}
}

func TestFindAuthRequestsByUser_Empty(t *testing.T) {
	repo, mock, db := newTestAuthRequestRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM auth_requests").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(authRequestRowColumns))

	requests, err := repo.FindAuthRequestsByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(requests) != 0 {
		t.Errorf("expected no requests, got %d", len(requests))
	}
}

func TestSaveAuthRequest_MissingRow(t *testing.T) {
	repo, mock, db := newTestAuthRequestRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE auth_requests").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveAuthRequest(ctx, models.AuthRequest{ID: "ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteAuthRequest_MissingRowIsNoop(t *testing.T) {
	repo, mock, db := newTestAuthRequestRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM auth_requests").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteAuthRequest(ctx, "ghost"); err != nil {
		t.Fatalf("expected no error on double delete, got %v", err)
	}
}

func TestDeleteExpiredAuthRequests(t *testing.T) {
	repo, mock, db := newTestAuthRequestRepo(t)
	defer db.Close()

	ctx := context.Background()
	cutoff := time.Now().Add(-15 * time.Minute)

	mock.ExpectExec("DELETE FROM auth_requests").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	purged, err := repo.DeleteExpiredAuthRequests(ctx, cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if purged != 3 {
		t.Errorf("expected 3 purged rows, got %d", purged)
	}
}

func TestWithTx_RoutesQueriesThroughTransaction(t *testing.T) {
	repo, mock, db := newTestAuthRequestRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM auth_requests").
		WithArgs("req-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.db.WithTx(ctx, func(ctx context.Context) error {
		return repo.DeleteAuthRequest(ctx, "req-1")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	repo, mock, db := newTestAuthRequestRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectRollback()

	wantErr := errors.New("apply failed")
	err := repo.db.WithTx(ctx, func(ctx context.Context) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected apply error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
