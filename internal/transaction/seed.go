package transaction

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	transactiondb "github.com/nao1215/bank/internal/transaction/db"
)

// seedTransactions は取引テーブルが空の場合にサンプル取引を投入する。
// 開発環境でフロントエンドからすぐに動作確認できるようにするための措置。
func (s *Server) seedTransactions() error {
	ctx := context.Background()

	count, err := s.queries.CountTransactions(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	seeds := []transactiondb.CreateTransactionParams{
		{
			SsnID:             "123456789",
			AccountID:         "ACC001",
			TransactionType:   "CREDIT",
			ModeOfTransaction: "DEPOSIT",
			Amount:            1000.00,
			TransactionDate:   now.AddDate(0, 0, -5).Format(time.RFC3339),
		},
		{
			SsnID:             "123456789",
			AccountID:         "ACC001",
			TransactionType:   "DEBIT",
			ModeOfTransaction: "WITHDRAWAL",
			Amount:            500.00,
			TransactionDate:   now.AddDate(0, 0, -4).Format(time.RFC3339),
		},
		{
			SsnID:             "987654321",
			AccountID:         "ACC002",
			TransactionType:   "CREDIT",
			ModeOfTransaction: "TRANSFER",
			Amount:            2000.00,
			TransactionDate:   now.AddDate(0, 0, -3).Format(time.RFC3339),
		},
		{
			SsnID:             "987654321",
			AccountID:         "ACC002",
			TransactionType:   "DEBIT",
			ModeOfTransaction: "ATM_WITHDRAWAL",
			Amount:            750.00,
			TransactionDate:   now.AddDate(0, 0, -2).Format(time.RFC3339),
		},
		{
			SsnID:             "555666777",
			AccountID:         "ACC003",
			TransactionType:   "CREDIT",
			ModeOfTransaction: "SALARY",
			Amount:            1500.00,
			TransactionDate:   now.AddDate(0, 0, -1).Format(time.RFC3339),
		},
		{
			SsnID:             "555666777",
			AccountID:         "ACC003",
			TransactionType:   "DEBIT",
			ModeOfTransaction: "ONLINE_PAYMENT",
			Amount:            200.00,
			TransactionDate:   now.Format(time.RFC3339),
		},
	}

	for _, seed := range seeds {
		seed.TransactionID = uuid.NewString()
		if err := s.queries.CreateTransaction(ctx, seed); err != nil {
			return err
		}
	}

	log.Printf("サンプル取引を%d件投入しました", len(seeds))
	return nil
}
