package repository

import (
	"context"
	"fmt"

	"github.com/yohan-cho/item-simulator/internal/domain"
	"github.com/yohan-cho/item-simulator/internal/repository/dao"
)

var (
	ErrAccountIDExists = dao.ErrAccountIDExists
	ErrAccountNotFound = dao.ErrAccountNotFound
)

type AccountDAO interface {
	Insert(ctx context.Context, account dao.Account) (dao.Account, error)
	FindByID(ctx context.Context, id uint) (dao.Account, error)
	FindByLoginID(ctx context.Context, loginID string) (dao.Account, error)
}

type AccountRepository struct {
	dao AccountDAO
}

func NewAccountRepository(dao AccountDAO) *AccountRepository {
	return &AccountRepository{
		dao: dao,
	}
}

func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	created, err := r.dao.Insert(ctx, dao.Account{
		LoginID:  account.LoginID,
		Password: account.Password,
	})
	if err != nil {
		return domain.Account{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id uint) (domain.Account, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Account{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AccountRepository) FindByLoginID(ctx context.Context, loginID string) (domain.Account, error) {
	found, err := r.dao.FindByLoginID(ctx, loginID)
	if err != nil {
		return domain.Account{}, fmt.Errorf("r.dao.FindByLoginID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AccountRepository) daoToDomain(a dao.Account) domain.Account {
	return domain.Account{
		ID:        a.ID,
		LoginID:   a.LoginID,
		Password:  a.Password,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
