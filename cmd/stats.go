package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/landifrancesco/TradeStatEngine/internal/dto"
	"github.com/landifrancesco/TradeStatEngine/pkg/httpclient"

	"github.com/spf13/cobra"
)

var (
	statsAccount uint
	statsAddr    string
)

// statsCmd talks to a running API server instead of the database, the same
// way the dashboard does.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print summary statistics from a running stats API",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client := httpclient.New(statsAddr, 10*time.Second)

		var summary dto.SummaryStats
		resp, err := client.Get(ctx, "/api/stats/summary", map[string]string{
			"account_id": fmt.Sprint(statsAccount),
		}, &summary)
		if err != nil {
			log.Fatalf("Failed to fetch summary: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			log.Fatalf("Stats API returned status %d: %s", resp.StatusCode, resp.Body)
		}

		fmt.Printf("Total trades: %d\n", summary.TotalTrades)
		fmt.Printf("  Wins:       %d\n", summary.TotalWins)
		fmt.Printf("  Losses:     %d\n", summary.TotalLosses)
		fmt.Printf("  Break-even: %d\n", summary.TotalBreakEven)
		fmt.Printf("  Unknown:    %d\n", summary.TotalUnknowns)
	},
}

func init() {
	statsCmd.Flags().UintVar(&statsAccount, "account", 0, "account id")
	statsCmd.Flags().StringVar(&statsAddr, "addr", "http://127.0.0.1:5000", "base URL of the stats API")
	_ = statsCmd.MarkFlagRequired("account")
}
