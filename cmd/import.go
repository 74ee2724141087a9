package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/landifrancesco/TradeStatEngine/internal/dto"
	"github.com/landifrancesco/TradeStatEngine/internal/service"

	"github.com/spf13/cobra"
)

var (
	importDir     string
	importAccount uint
	importProfile string
	importMoveTo  string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Ingest a directory of markdown journal entries into an account",
	Run: func(cmd *cobra.Command, args []string) {
		withServices(func(ctx context.Context, services *service.Service) {
			report, err := services.IngestService.IngestDir(ctx, importAccount, importDir, importProfile, importMoveTo)
			if err != nil {
				log.Fatalf("Import failed: %v", err)
			}

			fmt.Printf("Ingested: %d  Duplicates: %d  Skipped: %d  Rejected: %d\n",
				report.Ingested, report.Duplicates, report.Skipped, report.Rejected)
			for _, res := range report.Results {
				if res.Status == dto.IngestStatusRejected {
					fmt.Printf("  rejected %s: %s\n", res.Filename, res.Reason)
				}
			}
		})
	},
}

func init() {
	importCmd.Flags().StringVar(&importDir, "dir", "", "directory containing .md journal entries")
	importCmd.Flags().UintVar(&importAccount, "account", 0, "account id to ingest into")
	importCmd.Flags().StringVar(&importProfile, "profile", "", "ingestion profile (journal or strict)")
	importCmd.Flags().StringVar(&importMoveTo, "move-to", "", "move successfully ingested files into this directory (defaults to ingest.processed_dir)")
	_ = importCmd.MarkFlagRequired("dir")
	_ = importCmd.MarkFlagRequired("account")
}
