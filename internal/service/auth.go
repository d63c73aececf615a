package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/yohan-cho/item-simulator/internal/domain"
	"github.com/yohan-cho/item-simulator/internal/repository"
)

var (
	ErrAccountIDExists = repository.ErrAccountIDExists
	ErrAccountNotFound = repository.ErrAccountNotFound
	ErrWrongPassword   = errors.New("wrong password")
)

type AuthAccountRepository interface {
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	FindByID(ctx context.Context, id uint) (domain.Account, error)
	FindByLoginID(ctx context.Context, loginID string) (domain.Account, error)
}

type AuthService struct {
	repo AuthAccountRepository
}

func NewAuthService(repo AuthAccountRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

func (s *AuthService) SignUp(ctx context.Context, loginID, password string) (domain.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Account{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.Account{
		LoginID:  loginID,
		Password: string(hash),
	})
	if err != nil {
		return domain.Account{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) SignIn(ctx context.Context, loginID, password string) (domain.Account, error) {
	account, err := s.repo.FindByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domain.Account{}, ErrAccountNotFound
		}

		return domain.Account{}, fmt.Errorf("s.repo.FindByLoginID -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return domain.Account{}, ErrWrongPassword
	}

	return account, nil
}

func (s *AuthService) GetAccount(ctx context.Context, id uint) (domain.Account, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Account{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return account, nil
}
