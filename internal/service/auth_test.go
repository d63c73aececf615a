package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yohan-cho/item-simulator/internal/domain"
)

type fakeAccountRepository struct {
	accounts map[string]domain.Account
	nextID   uint
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{
		accounts: make(map[string]domain.Account),
	}
}

func (r *fakeAccountRepository) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	if _, exists := r.accounts[account.LoginID]; exists {
		return domain.Account{}, ErrAccountIDExists
	}

	r.nextID++
	account.ID = r.nextID
	r.accounts[account.LoginID] = account

	return account, nil
}

func (r *fakeAccountRepository) FindByID(_ context.Context, id uint) (domain.Account, error) {
	for _, account := range r.accounts {
		if account.ID == id {
			return account, nil
		}
	}

	return domain.Account{}, ErrAccountNotFound
}

func (r *fakeAccountRepository) FindByLoginID(_ context.Context, loginID string) (domain.Account, error) {
	account, ok := r.accounts[loginID]
	if !ok {
		return domain.Account{}, ErrAccountNotFound
	}

	return account, nil
}

func TestAuthService_SignUp(t *testing.T) {
	t.Run("stores a bcrypt hash, never the raw password", func(t *testing.T) {
		repo := newFakeAccountRepository()
		svc := NewAuthService(repo)

		created, err := svc.SignUp(context.Background(), "yohan123", "passw0rd")

		require.NoError(t, err)
		assert.NotZero(t, created.ID)

		stored := repo.accounts["yohan123"]
		assert.NotEqual(t, "passw0rd", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("passw0rd")))
	})

	t.Run("a taken login id fails", func(t *testing.T) {
		repo := newFakeAccountRepository()
		svc := NewAuthService(repo)

		_, err := svc.SignUp(context.Background(), "yohan123", "passw0rd")
		require.NoError(t, err)

		_, err = svc.SignUp(context.Background(), "yohan123", "0therpass")
		require.ErrorIs(t, err, ErrAccountIDExists)
	})
}

func TestAuthService_SignIn(t *testing.T) {
	repo := newFakeAccountRepository()
	svc := NewAuthService(repo)

	_, err := svc.SignUp(context.Background(), "yohan123", "passw0rd")
	require.NoError(t, err)

	t.Run("returns the account on correct credentials", func(t *testing.T) {
		account, err := svc.SignIn(context.Background(), "yohan123", "passw0rd")

		require.NoError(t, err)
		assert.Equal(t, "yohan123", account.LoginID)
	})

	t.Run("an unknown login id fails", func(t *testing.T) {
		_, err := svc.SignIn(context.Background(), "nob0dy", "passw0rd")

		require.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("a wrong password fails", func(t *testing.T) {
		_, err := svc.SignIn(context.Background(), "yohan123", "wr0ngpass")

		require.ErrorIs(t, err, ErrWrongPassword)
	})
}
