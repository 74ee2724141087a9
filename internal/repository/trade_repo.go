package repository

import (
	"context"
	"errors"

	"github.com/landifrancesco/TradeStatEngine/internal/model"
	"github.com/landifrancesco/TradeStatEngine/pkg/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrTradeNotFound = errors.New("trade not found")

type TradeRepository interface {
	// Insert persists a record idempotently on (account_id, filename). It
	// reports false when the record was already present; the stored row is
	// never overwritten.
	Insert(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) (bool, error)
	// List returns all records for an account in no guaranteed order;
	// ordering is an aggregation concern.
	List(ctx context.Context, accountID uint) ([]model.Trade, error)
	Delete(ctx context.Context, accountID, tradeID uint, opts ...utils.DBOption) error
	DeleteByAccount(ctx context.Context, accountID uint, opts ...utils.DBOption) error
}

type tradeRepository struct {
	db *gorm.DB
}

func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{db: db}
}

func (r *tradeRepository) Insert(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) (bool, error) {
	// The unique index resolves racing inserts for the same key: the first
	// writer wins, the rest become no-ops. Inserts for distinct accounts
	// never contend.
	res := utils.ApplyOptions(r.db.WithContext(ctx), opts...).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}, {Name: "filename"}},
			DoNothing: true,
		}).
		Create(trade)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *tradeRepository) List(ctx context.Context, accountID uint) ([]model.Trade, error) {
	var trades []model.Trade
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).Find(&trades).Error; err != nil {
		return nil, err
	}
	return trades, nil
}

func (r *tradeRepository) Delete(ctx context.Context, accountID, tradeID uint, opts ...utils.DBOption) error {
	res := utils.ApplyOptions(r.db.WithContext(ctx), opts...).
		Where("account_id = ? AND id = ?", accountID, tradeID).
		Delete(&model.Trade{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTradeNotFound
	}
	return nil
}

func (r *tradeRepository) DeleteByAccount(ctx context.Context, accountID uint, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db.WithContext(ctx), opts...).
		Where("account_id = ?", accountID).
		Delete(&model.Trade{}).Error
}
