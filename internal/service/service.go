package service

import (
	"github.com/landifrancesco/TradeStatEngine/config"
	"github.com/landifrancesco/TradeStatEngine/internal/repository"
	"github.com/landifrancesco/TradeStatEngine/pkg/cache"
	"github.com/landifrancesco/TradeStatEngine/pkg/logger"
)

type Service struct {
	IngestService  IngestService
	StatsService   StatsService
	AccountService AccountService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
) *Service {
	return &Service{
		IngestService:  NewIngestService(cfg, log, repo.AccountRepo, repo.TradeRepo, inmemoryCache),
		StatsService:   NewStatsService(cfg, log, repo.TradeRepo, inmemoryCache),
		AccountService: NewAccountService(log, repo.AccountRepo, repo.TradeRepo, repo.UnitOfWork, inmemoryCache),
	}
}
