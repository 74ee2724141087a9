package service

import (
	"context"
	"fmt"

	"github.com/landifrancesco/TradeStatEngine/internal/model"
	"github.com/landifrancesco/TradeStatEngine/internal/repository"
	"github.com/landifrancesco/TradeStatEngine/pkg/cache"
	"github.com/landifrancesco/TradeStatEngine/pkg/common"
	"github.com/landifrancesco/TradeStatEngine/pkg/logger"
	"github.com/landifrancesco/TradeStatEngine/pkg/utils"
)

type AccountService interface {
	Create(ctx context.Context, name string, accountType model.AccountType) (*model.Account, error)
	List(ctx context.Context) ([]model.Account, error)
	// Delete removes the account and all of its trades.
	Delete(ctx context.Context, id uint) error
	DeleteTrade(ctx context.Context, accountID, tradeID uint) error
}

type accountService struct {
	log         *logger.Logger
	accountRepo repository.AccountRepository
	tradeRepo   repository.TradeRepository
	uow         repository.UnitOfWork
	cache       cache.Cache
}

func NewAccountService(
	log *logger.Logger,
	accountRepo repository.AccountRepository,
	tradeRepo repository.TradeRepository,
	uow repository.UnitOfWork,
	inmemoryCache cache.Cache,
) AccountService {
	return &accountService{
		log:         log,
		accountRepo: accountRepo,
		tradeRepo:   tradeRepo,
		uow:         uow,
		cache:       inmemoryCache,
	}
}

func (s *accountService) Create(ctx context.Context, name string, accountType model.AccountType) (*model.Account, error) {
	if name == "" {
		return nil, fmt.Errorf("account name is required")
	}
	if !accountType.Valid() {
		return nil, fmt.Errorf("invalid account type %q, must be %s or %s",
			accountType, model.AccountTypeReal, model.AccountTypePaper)
	}

	account := &model.Account{Name: name, Type: accountType}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "Account created",
		logger.Field("account_id", account.ID),
		logger.StringField("name", account.Name))
	return account, nil
}

func (s *accountService) List(ctx context.Context) ([]model.Account, error) {
	return s.accountRepo.GetAll(ctx)
}

func (s *accountService) Delete(ctx context.Context, id uint) error {
	// The schema cascades trades on account deletion; deleting them in the
	// same transaction keeps the behavior identical on databases restored
	// without the constraint.
	err := s.uow.Run(func(opts ...utils.DBOption) error {
		if err := s.tradeRepo.DeleteByAccount(ctx, id, opts...); err != nil {
			return err
		}
		return s.accountRepo.Delete(ctx, id, opts...)
	})
	if err != nil {
		return err
	}

	s.cache.Delete(fmt.Sprintf(common.KEY_ACCOUNT_TRADES, id))
	s.log.InfoContext(ctx, "Account deleted", logger.Field("account_id", id))
	return nil
}

func (s *accountService) DeleteTrade(ctx context.Context, accountID, tradeID uint) error {
	if err := s.tradeRepo.Delete(ctx, accountID, tradeID); err != nil {
		return err
	}
	s.cache.Delete(fmt.Sprintf(common.KEY_ACCOUNT_TRADES, accountID))
	return nil
}
