package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/landifrancesco/TradeStatEngine/config"
	"github.com/landifrancesco/TradeStatEngine/internal/dto"
	"github.com/landifrancesco/TradeStatEngine/internal/parser"
	"github.com/landifrancesco/TradeStatEngine/internal/repository"
	"github.com/landifrancesco/TradeStatEngine/pkg/cache"
	"github.com/landifrancesco/TradeStatEngine/pkg/common"
	"github.com/landifrancesco/TradeStatEngine/pkg/logger"

	"golang.org/x/sync/errgroup"
)

type IngestService interface {
	// Ingest assembles one document fully in memory and then touches the
	// store at most once. A rejection or skip is a per-document status, not
	// an error; only storage failures surface as errors.
	Ingest(ctx context.Context, doc dto.IngestDocument, profileName string) (dto.IngestResult, error)
	// IngestDir runs a batch over every markdown file in a directory under a
	// single ingestion profile.
	IngestDir(ctx context.Context, accountID uint, dir, profileName, moveTo string) (*dto.BatchReport, error)
}

type ingestService struct {
	cfg         *config.Config
	log         *logger.Logger
	accountRepo repository.AccountRepository
	tradeRepo   repository.TradeRepository
	cache       cache.Cache
}

func NewIngestService(
	cfg *config.Config,
	log *logger.Logger,
	accountRepo repository.AccountRepository,
	tradeRepo repository.TradeRepository,
	inmemoryCache cache.Cache,
) IngestService {
	return &ingestService{
		cfg:         cfg,
		log:         log,
		accountRepo: accountRepo,
		tradeRepo:   tradeRepo,
		cache:       inmemoryCache,
	}
}

func (s *ingestService) Ingest(ctx context.Context, doc dto.IngestDocument, profileName string) (dto.IngestResult, error) {
	if profileName == "" {
		profileName = s.cfg.Ingest.Profile
	}
	profile, err := parser.ProfileByName(profileName)
	if err != nil {
		return dto.IngestResult{}, err
	}

	trade, err := parser.NewAssembler(profile).Assemble(doc.AccountID, doc.Filename, doc.Text)
	if errors.Is(err, parser.ErrTradeSkipped) {
		s.log.InfoContext(ctx, "Skipping unreported trade",
			logger.StringField("filename", doc.Filename))
		return dto.IngestResult{
			Filename: doc.Filename,
			Status:   dto.IngestStatusSkipped,
			Reason:   err.Error(),
		}, nil
	}
	var rejection *parser.RejectionError
	if errors.As(err, &rejection) {
		s.log.WarnContext(ctx, "Rejected journal document",
			logger.StringField("filename", doc.Filename),
			logger.StringField("reason", rejection.Reason))
		return dto.IngestResult{
			Filename: doc.Filename,
			Status:   dto.IngestStatusRejected,
			Reason:   rejection.Reason,
		}, nil
	}
	if err != nil {
		return dto.IngestResult{}, err
	}

	inserted, err := s.tradeRepo.Insert(ctx, trade)
	if err != nil {
		return dto.IngestResult{}, fmt.Errorf("failed to store trade %q: %w", doc.Filename, err)
	}

	if !inserted {
		s.log.DebugContext(ctx, "Trade already present",
			logger.StringField("filename", doc.Filename),
			logger.Field("account_id", doc.AccountID))
		return dto.IngestResult{Filename: doc.Filename, Status: dto.IngestStatusDuplicate}, nil
	}

	s.cache.Delete(fmt.Sprintf(common.KEY_ACCOUNT_TRADES, doc.AccountID))
	return dto.IngestResult{Filename: doc.Filename, Status: dto.IngestStatusIngested}, nil
}

func (s *ingestService) IngestDir(ctx context.Context, accountID uint, dir, profileName, moveTo string) (*dto.BatchReport, error) {
	if _, err := s.accountRepo.Get(ctx, accountID); err != nil {
		return nil, err
	}
	if profileName == "" {
		profileName = s.cfg.Ingest.Profile
	}
	// Resolve the profile up front so a typo fails the batch before any file
	// is read, and so the whole run uses one profile.
	if _, err := parser.ProfileByName(profileName); err != nil {
		return nil, err
	}
	if moveTo == "" {
		moveTo = s.cfg.Ingest.ProcessedDir
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read import directory %q: %w", dir, err)
	}

	report := &dto.BatchReport{}
	var mu sync.Mutex

	concurrency := s.cfg.Ingest.MaxConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != common.MarkdownExtension {
			continue
		}
		name := entry.Name()

		g.Go(func() error {
			text, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				return fmt.Errorf("failed to read %q: %w", name, err)
			}

			res, err := s.Ingest(gctx, dto.IngestDocument{
				AccountID: accountID,
				Filename:  name,
				Text:      string(text),
			}, profileName)
			if err != nil {
				return err
			}

			if moveTo != "" && res.Status == dto.IngestStatusIngested {
				if err := moveProcessedFile(dir, name, moveTo, accountID); err != nil {
					s.log.WarnContext(gctx, "Could not move processed file",
						logger.StringField("filename", name),
						logger.ErrorField(err))
				}
			}

			mu.Lock()
			report.Add(res)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "Import batch finished",
		logger.Field("account_id", accountID),
		logger.IntField("ingested", report.Ingested),
		logger.IntField("duplicates", report.Duplicates),
		logger.IntField("skipped", report.Skipped),
		logger.IntField("rejected", report.Rejected))
	return report, nil
}

func moveProcessedFile(dir, name, moveTo string, accountID uint) error {
	target := filepath.Join(moveTo, fmt.Sprintf("Account_%d", accountID))
	if err := os.MkdirAll(target, 0o755); err != nil {
		return err
	}
	return os.Rename(filepath.Join(dir, name), filepath.Join(target, name))
}
