package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/repository/postgres"
)

var userCols = []string{"id", "name", "email", "password_hash", "role", "created_on", "updated_on"}

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		u := &domain.User{Name: "Ana", Email: "ana@test.com", PasswordHash: "hash", Role: domain.RoleCustomer}
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(u.Name, u.Email, u.PasswordHash, u.Role, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		err := repo.Create(ctx, u)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), u.ID)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		u := &domain.User{Name: "Ana", Email: "ana@test.com", PasswordHash: "hash", Role: domain.RoleCustomer}
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(u.Name, u.Email, u.PasswordHash, u.Role, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, u)
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
			WithArgs("ana@test.com").
			WillReturnRows(sqlmock.NewRows(userCols).AddRow(7, "Ana", "ana@test.com", "hash", "customer", now, now))

		u, err := repo.GetByEmail(ctx, "ana@test.com")
		assert.NoError(t, err)
		assert.Equal(t, int32(7), u.ID)
		assert.Equal(t, domain.RoleCustomer, u.Role)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
			WithArgs("nobody@test.com").
			WillReturnRows(sqlmock.NewRows(userCols))

		_, err := repo.GetByEmail(ctx, "nobody@test.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
