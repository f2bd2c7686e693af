package gateway

import (
	"context"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/bank/pkg/httpclient"
)

// dashboardSummary はダッシュボード集計のJSONレスポンス構造。
type dashboardSummary struct {
	// TotalCustomers は登録済み顧客数。
	TotalCustomers int64 `json:"totalCustomers"`
	// TotalEmployees は登録済み行員数。
	TotalEmployees int64 `json:"totalEmployees"`
	// TotalLoanRequests はローン申請数。
	TotalLoanRequests int64 `json:"totalLoanRequests"`
	// TotalBankBalance は全取引の入金から出金を差し引いた総残高。
	TotalBankBalance float64 `json:"totalBankBalance"`
}

// handleDashboardSummary はダッシュボード集計リクエストを処理する。
// 4つのバックエンドからそれぞれ件数・残高を取得して1つの応答にまとめる。
// 各取得は独立しており、1つのサービスの障害は該当項目をゼロにするだけで、
// 他の項目や応答全体には影響しない。集計自体は常に200で応答する。
func (s *Server) handleDashboardSummary(c *gin.Context) {
	ctx := c.Request.Context()
	// 呼び出し元のトークンをバックエンドにも伝播する
	if tok, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found {
		ctx = httpclient.WithToken(ctx, tok)
	}

	var summary dashboardSummary
	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		summary.TotalCustomers = s.fetchCustomerCount(ctx)
	}()
	go func() {
		defer wg.Done()
		summary.TotalEmployees = s.fetchEmployeeCount(ctx)
	}()
	go func() {
		defer wg.Done()
		summary.TotalLoanRequests = s.fetchLoanCount(ctx)
	}()
	go func() {
		defer wg.Done()
		summary.TotalBankBalance = s.fetchTotalBalance(ctx)
	}()
	wg.Wait()

	c.JSON(http.StatusOK, summary)
}

// fetchCustomerCount はcustomerサービスから顧客数を取得する。
// レスポンスボディは数値のみ。失敗時はゼロを返す。
func (s *Server) fetchCustomerCount(ctx context.Context) int64 {
	var count int64
	if err := s.customerClient.GetJSON(ctx, "/customers/count", &count); err != nil {
		log.Printf("顧客数の取得に失敗: %v", err)
		return 0
	}
	return count
}

// fetchEmployeeCount はemployeeサービスから行員数を取得する。
// レスポンスボディは数値のみ。失敗時はゼロを返す。
func (s *Server) fetchEmployeeCount(ctx context.Context) int64 {
	var count int64
	if err := s.employeeClient.GetJSON(ctx, "/employees/count", &count); err != nil {
		log.Printf("行員数の取得に失敗: %v", err)
		return 0
	}
	return count
}

// fetchLoanCount はloanサービスからローン申請数を取得する。
// loanサービスだけは {"count": N} 形式で応答するため、countフィールドを
// 取り出す。フィールドが無い場合やパースできない場合はゼロを返す。
func (s *Server) fetchLoanCount(ctx context.Context) int64 {
	var result struct {
		Count int64 `json:"count"`
	}
	if err := s.loanClient.GetJSON(ctx, "/loans/count", &result); err != nil {
		log.Printf("ローン申請数の取得に失敗: %v", err)
		return 0
	}
	return result.Count
}

// fetchTotalBalance はtransactionサービスから総残高を取得する。
// レスポンスボディは数値のみ。失敗時はゼロを返す。
func (s *Server) fetchTotalBalance(ctx context.Context) float64 {
	var balance float64
	if err := s.transactionClient.GetJSON(ctx, "/transactions/total-balance", &balance); err != nil {
		log.Printf("総残高の取得に失敗: %v", err)
		return 0
	}
	return balance
}
