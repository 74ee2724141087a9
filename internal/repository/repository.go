package repository

import (
	"gorm.io/gorm"
)

type Repository struct {
	AccountRepo AccountRepository
	TradeRepo   TradeRepository
	UnitOfWork  UnitOfWork
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		AccountRepo: NewAccountRepository(db),
		TradeRepo:   NewTradeRepository(db),
		UnitOfWork:  NewUnitOfWork(db),
	}
}
