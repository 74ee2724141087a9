package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/landifrancesco/TradeStatEngine/internal/model"
	"github.com/landifrancesco/TradeStatEngine/internal/repository"
	"github.com/landifrancesco/TradeStatEngine/internal/service"

	"github.com/spf13/cobra"
)

var (
	accountName string
	accountType string
	accountID   uint
	tradeID     uint
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage journal accounts",
}

var accountCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new account",
	Run: func(cmd *cobra.Command, args []string) {
		withServices(func(ctx context.Context, services *service.Service) {
			account, err := services.AccountService.Create(ctx, accountName, model.AccountType(accountType))
			if err != nil {
				log.Fatalf("Failed to create account: %v", err)
			}
			fmt.Printf("Created account %d (%s, %s)\n", account.ID, account.Name, account.Type)
		})
	},
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	Run: func(cmd *cobra.Command, args []string) {
		withServices(func(ctx context.Context, services *service.Service) {
			accounts, err := services.AccountService.List(ctx)
			if err != nil {
				log.Fatalf("Failed to list accounts: %v", err)
			}
			for _, account := range accounts {
				fmt.Printf("%d\t%s\t%s\n", account.ID, account.Name, account.Type)
			}
		})
	},
}

var accountDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an account and all of its trades",
	Run: func(cmd *cobra.Command, args []string) {
		withServices(func(ctx context.Context, services *service.Service) {
			if err := services.AccountService.Delete(ctx, accountID); err != nil {
				log.Fatalf("Failed to delete account %d: %v", accountID, err)
			}
			fmt.Printf("Deleted account %d\n", accountID)
		})
	},
}

var accountDeleteTradeCmd = &cobra.Command{
	Use:   "delete-trade",
	Short: "Delete a single trade record from an account",
	Run: func(cmd *cobra.Command, args []string) {
		withServices(func(ctx context.Context, services *service.Service) {
			if err := services.AccountService.DeleteTrade(ctx, accountID, tradeID); err != nil {
				log.Fatalf("Failed to delete trade %d from account %d: %v", tradeID, accountID, err)
			}
			fmt.Printf("Deleted trade %d from account %d\n", tradeID, accountID)
		})
	},
}

// withServices wires the full dependency graph for one-shot CLI commands.
func withServices(fn func(ctx context.Context, services *service.Service)) {
	ctx := context.Background()

	appDep, err := NewAppDependency(ctx)
	if err != nil {
		log.Fatalf("Failed to create app dependency: %v", err)
	}
	defer func() {
		if err := appDep.Close(); err != nil {
			log.Printf("Failed to close app dependency: %v", err)
		}
	}()

	repo := repository.NewRepository(appDep.db.DB)
	fn(ctx, service.NewService(appDep.cfg, appDep.log, repo, appDep.cache))
}

func init() {
	accountCreateCmd.Flags().StringVar(&accountName, "name", "", "account name")
	accountCreateCmd.Flags().StringVar(&accountType, "type", string(model.AccountTypeReal), "account type (Real or Paper)")
	_ = accountCreateCmd.MarkFlagRequired("name")

	accountDeleteCmd.Flags().UintVar(&accountID, "id", 0, "account id")
	_ = accountDeleteCmd.MarkFlagRequired("id")

	accountDeleteTradeCmd.Flags().UintVar(&accountID, "account", 0, "account id")
	accountDeleteTradeCmd.Flags().UintVar(&tradeID, "trade", 0, "trade id")
	_ = accountDeleteTradeCmd.MarkFlagRequired("account")
	_ = accountDeleteTradeCmd.MarkFlagRequired("trade")

	accountCmd.AddCommand(accountCreateCmd)
	accountCmd.AddCommand(accountListCmd)
	accountCmd.AddCommand(accountDeleteCmd)
	accountCmd.AddCommand(accountDeleteTradeCmd)
}
