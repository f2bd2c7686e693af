package employee

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	employeedb "github.com/nao1215/bank/internal/employee/db"
)

// seedEmployees は行員テーブルが空の場合にサンプル行員を投入する。
// 開発環境でフロントエンドからすぐに動作確認できるようにするための措置。
func (s *Server) seedEmployees() error {
	ctx := context.Background()

	count, err := s.queries.CountEmployees(ctx)
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

	seeds := []employeedb.CreateEmployeeParams{
		{
			EmployeeID:    "1000001",
			FirstName:     "John",
			LastName:      "Smith",
			Email:         "john.smith@bank.example.com",
			ContactNumber: "9000000001",
			Address:       "10 Bank Street, Springfield",
			DateOfBirth:   "1985-03-20",
			Gender:        "MALE",
			PasswordHash:  string(hash),
			Role:          "EMPLOYEE",
		},
		{
			EmployeeID:    "1000002",
			FirstName:     "Sarah",
			LastName:      "Johnson",
			Email:         "sarah.johnson@bank.example.com",
			ContactNumber: "9000000002",
			Address:       "20 Bank Street, Springfield",
			DateOfBirth:   "1982-07-08",
			Gender:        "FEMALE",
			PasswordHash:  string(hash),
			Role:          "MANAGER",
		},
		{
			EmployeeID:    "1000003",
			FirstName:     "Mike",
			LastName:      "Wilson",
			Email:         "mike.wilson@bank.example.com",
			ContactNumber: "9000000003",
			Address:       "30 Bank Street, Springfield",
			DateOfBirth:   "1991-12-01",
			Gender:        "MALE",
			PasswordHash:  string(hash),
			Role:          "EMPLOYEE",
		},
	}

	for _, seed := range seeds {
		if err := s.queries.CreateEmployee(ctx, seed); err != nil {
			return err
		}
	}

	log.Printf("サンプル行員を%d件投入しました", len(seeds))
	return nil
}
