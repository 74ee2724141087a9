package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/landifrancesco/TradeStatEngine/config"
	"github.com/landifrancesco/TradeStatEngine/internal/model"
	"github.com/landifrancesco/TradeStatEngine/internal/repository"
	"github.com/landifrancesco/TradeStatEngine/pkg/cache"
	"github.com/landifrancesco/TradeStatEngine/pkg/logger"
	"github.com/landifrancesco/TradeStatEngine/pkg/utils"
)

// fakeTradeRepository mirrors the store's idempotency contract in memory:
// first writer wins on (account_id, filename), duplicates report false.
type fakeTradeRepository struct {
	mu        sync.Mutex
	nextID    uint
	trades    []model.Trade
	insertErr error
}

func (f *fakeTradeRepository) Insert(_ context.Context, trade *model.Trade, _ ...utils.DBOption) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return false, f.insertErr
	}
	for _, t := range f.trades {
		if t.AccountID == trade.AccountID && t.Filename == trade.Filename {
			return false, nil
		}
	}
	f.nextID++
	trade.ID = f.nextID
	f.trades = append(f.trades, *trade)
	return true, nil
}

func (f *fakeTradeRepository) List(_ context.Context, accountID uint) ([]model.Trade, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Trade
	for _, t := range f.trades {
		if t.AccountID == accountID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTradeRepository) Delete(_ context.Context, accountID, tradeID uint, _ ...utils.DBOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.trades {
		if t.AccountID == accountID && t.ID == tradeID {
			f.trades = append(f.trades[:i], f.trades[i+1:]...)
			return nil
		}
	}
	return repository.ErrTradeNotFound
}

func (f *fakeTradeRepository) DeleteByAccount(_ context.Context, accountID uint, _ ...utils.DBOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.trades[:0]
	for _, t := range f.trades {
		if t.AccountID != accountID {
			kept = append(kept, t)
		}
	}
	f.trades = kept
	return nil
}

type fakeAccountRepository struct {
	mu       sync.Mutex
	nextID   uint
	accounts map[uint]model.Account
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{accounts: make(map[uint]model.Account)}
}

func (f *fakeAccountRepository) Create(_ context.Context, account *model.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	account.ID = f.nextID
	f.accounts[account.ID] = *account
	return nil
}

func (f *fakeAccountRepository) Get(_ context.Context, id uint) (*model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	return &account, nil
}

func (f *fakeAccountRepository) GetAll(_ context.Context) ([]model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Account, 0, len(f.accounts))
	for _, a := range f.accounts {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAccountRepository) Delete(_ context.Context, id uint, _ ...utils.DBOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.accounts[id]; !ok {
		return repository.ErrAccountNotFound
	}
	delete(f.accounts, id)
	return nil
}

type testEnv struct {
	cfg         *config.Config
	log         *logger.Logger
	cache       cache.Cache
	tradeRepo   *fakeTradeRepository
	accountRepo *fakeAccountRepository
	ingest      IngestService
	stats       StatsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log, err := logger.New("error", "console")
	require.NoError(t, err)

	cfg := &config.Config{
		Cache: config.Cache{
			DefaultExpiration: time.Minute,
			CleanupInterval:   time.Minute,
		},
		Ingest: config.Ingest{
			Profile:        "journal",
			MaxConcurrency: 2,
		},
	}

	env := &testEnv{
		cfg:         cfg,
		log:         log,
		cache:       cache.NewCache(cfg.Cache.DefaultExpiration, cfg.Cache.CleanupInterval),
		tradeRepo:   &fakeTradeRepository{},
		accountRepo: newFakeAccountRepository(),
	}
	env.ingest = NewIngestService(cfg, log, env.accountRepo, env.tradeRepo, env.cache)
	env.stats = NewStatsService(cfg, log, env.tradeRepo, env.cache)
	return env
}

func (e *testEnv) seedAccount(t *testing.T, name string) uint {
	t.Helper()
	account := &model.Account{Name: name, Type: model.AccountTypeReal}
	require.NoError(t, e.accountRepo.Create(context.Background(), account))
	return account.ID
}

func (e *testEnv) seedTrade(t *testing.T, trade model.Trade) {
	t.Helper()
	inserted, err := e.tradeRepo.Insert(context.Background(), &trade)
	require.NoError(t, err)
	require.True(t, inserted)
}
