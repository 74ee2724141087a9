package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landifrancesco/TradeStatEngine/internal/dto"
	"github.com/landifrancesco/TradeStatEngine/internal/model"
	"github.com/landifrancesco/TradeStatEngine/internal/repository"
)

const winDoc = `Time writing: 21:30 12/05/2024
Position Size: **0.5**
Opened: **12/05/2024 10:00**
Closed: **12/05/2024 11:30**
Profit/Loss: **+120.00€**
R/R: **2.0 -> 3.5**
Strategy Used: **Box Setup**
`

const lossDoc = `Opened: 14/05/2024 09:00
Closed: 14/05/2024 09:45
Profit/Loss: -45.50€
`

const skipDoc = `Opened: 15/05/2024 10:00
Closed: 15/05/2024 10:30
Profit/Loss: #
`

const rejectDoc = `Opened: whenever
Closed: 15/05/2024 10:30
Profit/Loss: +10€
`

func TestIngestService_Ingest(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.ingest.Ingest(ctx, dto.IngestDocument{
		AccountID: 1, Filename: "win.md", Text: winDoc,
	}, "")
	require.NoError(t, err)
	assert.Equal(t, dto.IngestStatusIngested, res.Status)

	trades, err := env.tradeRepo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, model.OutcomeWin, trades[0].TradeOutcome)
	assert.Equal(t, "Box Setup", trades[0].StrategyUsed)
}

func TestIngestService_Ingest_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doc := dto.IngestDocument{AccountID: 1, Filename: "win.md", Text: winDoc}

	res, err := env.ingest.Ingest(ctx, doc, "")
	require.NoError(t, err)
	assert.Equal(t, dto.IngestStatusIngested, res.Status)

	// Re-ingesting the same document, even with different content, leaves the
	// stored record untouched.
	doc.Text = lossDoc
	res, err = env.ingest.Ingest(ctx, doc, "")
	require.NoError(t, err)
	assert.Equal(t, dto.IngestStatusDuplicate, res.Status)

	trades, err := env.tradeRepo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, model.OutcomeWin, trades[0].TradeOutcome)
}

func TestIngestService_Ingest_SentinelSkips(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.ingest.Ingest(ctx, dto.IngestDocument{
		AccountID: 1, Filename: "skip.md", Text: skipDoc,
	}, "")
	require.NoError(t, err)
	assert.Equal(t, dto.IngestStatusSkipped, res.Status)

	// A skipped document leaves no record behind.
	trades, err := env.tradeRepo.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, trades)
}

func TestIngestService_Ingest_Rejection(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.ingest.Ingest(ctx, dto.IngestDocument{
		AccountID: 1, Filename: "reject.md", Text: rejectDoc,
	}, "")
	require.NoError(t, err)
	assert.Equal(t, dto.IngestStatusRejected, res.Status)
	assert.NotEmpty(t, res.Reason)

	trades, err := env.tradeRepo.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, trades)
}

func TestIngestService_Ingest_UnknownProfile(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.ingest.Ingest(context.Background(), dto.IngestDocument{
		AccountID: 1, Filename: "win.md", Text: winDoc,
	}, "legacy-v3")
	assert.Error(t, err)
}

func TestIngestService_Ingest_InvalidatesStatsCache(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.ingest.Ingest(ctx, dto.IngestDocument{
		AccountID: 1, Filename: "win.md", Text: winDoc,
	}, "")
	require.NoError(t, err)

	summary, err := env.stats.Summary(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalTrades)

	_, err = env.ingest.Ingest(ctx, dto.IngestDocument{
		AccountID: 1, Filename: "loss.md", Text: lossDoc,
	}, "")
	require.NoError(t, err)

	summary, err = env.stats.Summary(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalTrades)
	assert.Equal(t, 1, summary.TotalWins)
	assert.Equal(t, 1, summary.TotalLosses)
}

func TestIngestService_IngestDir(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	accountID := env.seedAccount(t, "main")

	dir := t.TempDir()
	files := map[string]string{
		"win.md":    winDoc,
		"loss.md":   lossDoc,
		"skip.md":   skipDoc,
		"reject.md": rejectDoc,
		"notes.txt": "not a journal document",
	}
	for name, text := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	report, err := env.ingest.IngestDir(ctx, accountID, dir, "", "")
	require.NoError(t, err)

	assert.Equal(t, 2, report.Ingested)
	assert.Equal(t, 0, report.Duplicates)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.Rejected)
	assert.Len(t, report.Results, 4)

	// Second run over the same directory is a pure no-op for the store.
	report, err = env.ingest.IngestDir(ctx, accountID, dir, "", "")
	require.NoError(t, err)
	assert.Equal(t, 0, report.Ingested)
	assert.Equal(t, 2, report.Duplicates)

	trades, err := env.tradeRepo.List(ctx, accountID)
	require.NoError(t, err)
	assert.Len(t, trades, 2)
}

func TestIngestService_IngestDir_MovesProcessedFiles(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	accountID := env.seedAccount(t, "main")

	dir := t.TempDir()
	processed := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "win.md"), []byte(winDoc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.md"), []byte(skipDoc), 0o644))

	_, err := env.ingest.IngestDir(ctx, accountID, dir, "", processed)
	require.NoError(t, err)

	// Only ingested documents move; skipped ones stay put.
	moved := filepath.Join(processed, "Account_1", "win.md")
	_, err = os.Stat(moved)
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "win.md"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "skip.md"))
	assert.NoError(t, err)
}

func TestIngestService_IngestDir_ProcessedDirDefault(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	accountID := env.seedAccount(t, "main")

	dir := t.TempDir()
	processed := t.TempDir()
	env.cfg.Ingest.ProcessedDir = processed
	require.NoError(t, os.WriteFile(filepath.Join(dir, "win.md"), []byte(winDoc), 0o644))

	// No explicit move target; the configured processed_dir applies.
	_, err := env.ingest.IngestDir(ctx, accountID, dir, "", "")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(processed, "Account_1", "win.md"))
	assert.NoError(t, err)
}

func TestIngestService_IngestDir_UnknownAccount(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.ingest.IngestDir(context.Background(), 99, t.TempDir(), "", "")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestIngestService_IngestDir_UnknownProfile(t *testing.T) {
	env := newTestEnv(t)
	accountID := env.seedAccount(t, "main")

	_, err := env.ingest.IngestDir(context.Background(), accountID, t.TempDir(), "legacy-v3", "")
	assert.Error(t, err)
}
