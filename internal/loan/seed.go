package loan

import (
	"context"
	"log"

	loandb "github.com/nao1215/bank/internal/loan/db"
)

// seedLoans はローンテーブルが空の場合にサンプルローンを投入する。
// 開発環境でフロントエンドからすぐに動作確認できるようにするための措置。
func (s *Server) seedLoans() error {
	ctx := context.Background()

	count, err := s.queries.CountLoans(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seeds := []loandb.CreateLoanParams{
		{
			SsnID:           "1001001",
			LoanType:        "PERSONAL",
			LoanAmount:      250000.00,
			DurationMonths:  240,
			Occupation:      "Software Engineer",
			EmployerName:    "Tech Corp",
			EmployerAddress: "123 Tech Street, Silicon Valley, CA",
			Email:           "john.doe@example.com",
			Address:         "456 Oak Street, San Francisco, CA",
			MaritalStatus:   "MARRIED",
			ContactNumber:   "1234567890",
			Status:          "PENDING",
		},
		{
			SsnID:           "1001002",
			LoanType:        "PERSONAL",
			LoanAmount:      150000.00,
			DurationMonths:  180,
			Occupation:      "Marketing Manager",
			EmployerName:    "Marketing Inc",
			EmployerAddress: "789 Marketing Blvd, Los Angeles, CA",
			Email:           "jane.smith@example.com",
			Address:         "321 Pine Street, Los Angeles, CA",
			MaritalStatus:   "SINGLE",
			ContactNumber:   "0987654321",
			Status:          "PENDING",
		},
	}

	for _, seed := range seeds {
		seed.LoanID = newLoanID()
		if err := s.queries.CreateLoan(ctx, seed); err != nil {
			return err
		}
	}

	log.Printf("サンプルローンを%d件投入しました", len(seeds))
	return nil
}
