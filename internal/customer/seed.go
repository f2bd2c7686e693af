package customer

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	customerdb "github.com/nao1215/bank/internal/customer/db"
)

// seedCustomers は顧客テーブルが空の場合にサンプル顧客を投入する。
// 開発環境でフロントエンドからすぐに動作確認できるようにするための措置。
func (s *Server) seedCustomers() error {
	ctx := context.Background()

	count, err := s.queries.CountCustomers(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	seeds := []customerdb.CreateCustomerParams{
		{
			SsnID:         "1001001",
			FirstName:     "John",
			LastName:      "Doe",
			Email:         "john.doe@example.com",
			Address:       "123 Main Street, Springfield",
			ContactNumber: "9876543210",
			AadharNumber:  "123456789012",
			PanNumber:     "ABCDE1234F",
			AccountNumber: "ACC1001001",
			DateOfBirth:   "1990-05-15",
			Gender:        "MALE",
			MaritalStatus: "SINGLE",
			PasswordHash:  string(hash),
			Role:          "CUSTOMER",
		},
		{
			SsnID:         "1001002",
			FirstName:     "Jane",
			LastName:      "Smith",
			Email:         "jane.smith@example.com",
			Address:       "456 Oak Avenue, Shelbyville",
			ContactNumber: "9123456780",
			AadharNumber:  "210987654321",
			PanNumber:     "FGHIJ5678K",
			AccountNumber: "ACC1001002",
			DateOfBirth:   "1988-11-02",
			Gender:        "FEMALE",
			MaritalStatus: "MARRIED",
			PasswordHash:  string(hash),
			Role:          "CUSTOMER",
		},
	}

	for _, seed := range seeds {
		if err := s.queries.CreateCustomer(ctx, seed); err != nil {
			return err
		}
	}

	log.Printf("サンプル顧客を%d件投入しました", len(seeds))
	return nil
}
