package gateway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newDashboardTestServer は4つのバックエンドをそれぞれ個別のモックで差し替えた
// テスト用Gatewayサーバーを生成する。
func newDashboardTestServer(t *testing.T, customer, employee, loan, transaction http.HandlerFunc) *Server {
	t.Helper()

	customerBackend := httptest.NewServer(customer)
	t.Cleanup(customerBackend.Close)
	employeeBackend := httptest.NewServer(employee)
	t.Cleanup(employeeBackend.Close)
	loanBackend := httptest.NewServer(loan)
	t.Cleanup(loanBackend.Close)
	transactionBackend := httptest.NewServer(transaction)
	t.Cleanup(transactionBackend.Close)

	return newTestServer(t, serviceURLConfig{
		Customer:    customerBackend.URL,
		Employee:    employeeBackend.URL,
		Transaction: transactionBackend.URL,
		Loan:        loanBackend.URL,
	})
}

// jsonBody は固定のJSONボディを返すモックハンドラを生成する。
func jsonBody(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

// doSummaryRequest はダッシュボード集計を呼び出して結果をデコードするヘルパー。
func doSummaryRequest(t *testing.T, s *Server) (int, dashboardSummary) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	s.router.ServeHTTP(w, req)

	var summary dashboardSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("レスポンスのパースに失敗: %v, body=%s", err, w.Body.String())
	}
	return w.Code, summary
}

// TestDashboardSummary はダッシュボード集計エンドポイントを検証する。
func TestDashboardSummary(t *testing.T) {
	t.Parallel()

	t.Run("全バックエンドが正常な場合に4項目すべてが集計されること", func(t *testing.T) {
		t.Parallel()

		s := newDashboardTestServer(t,
			jsonBody(`5`),
			jsonBody(`3`),
			jsonBody(`{"count": 7}`),
			jsonBody(`12345.67`),
		)

		code, summary := doSummaryRequest(t, s)
		if code != http.StatusOK {
			t.Errorf("ステータスコード = %d, want %d", code, http.StatusOK)
		}
		if summary.TotalCustomers != 5 {
			t.Errorf("totalCustomers = %d, want 5", summary.TotalCustomers)
		}
		if summary.TotalEmployees != 3 {
			t.Errorf("totalEmployees = %d, want 3", summary.TotalEmployees)
		}
		if summary.TotalLoanRequests != 7 {
			t.Errorf("totalLoanRequests = %d, want 7", summary.TotalLoanRequests)
		}
		if summary.TotalBankBalance != 12345.67 {
			t.Errorf("totalBankBalance = %f, want 12345.67", summary.TotalBankBalance)
		}
	})

	t.Run("1つのバックエンド障害は該当項目のみゼロになり200で応答すること", func(t *testing.T) {
		t.Parallel()

		// loanサービスだけ接続不能にする
		loanBroken := httptest.NewServer(jsonBody(`{"count": 7}`))
		loanBroken.Close()

		customerBackend := httptest.NewServer(jsonBody(`5`))
		t.Cleanup(customerBackend.Close)
		employeeBackend := httptest.NewServer(jsonBody(`3`))
		t.Cleanup(employeeBackend.Close)
		transactionBackend := httptest.NewServer(jsonBody(`12345.67`))
		t.Cleanup(transactionBackend.Close)

		s := newTestServer(t, serviceURLConfig{
			Customer:    customerBackend.URL,
			Employee:    employeeBackend.URL,
			Transaction: transactionBackend.URL,
			Loan:        loanBroken.URL,
		})

		code, summary := doSummaryRequest(t, s)
		if code != http.StatusOK {
			t.Errorf("ステータスコード = %d, want %d", code, http.StatusOK)
		}
		if summary.TotalLoanRequests != 0 {
			t.Errorf("totalLoanRequests = %d, want 0", summary.TotalLoanRequests)
		}
		if summary.TotalCustomers != 5 || summary.TotalEmployees != 3 || summary.TotalBankBalance != 12345.67 {
			t.Errorf("正常なバックエンドの値が失われた: %+v", summary)
		}
	})

	t.Run("ローン件数のcountフィールドが無い場合はゼロになること", func(t *testing.T) {
		t.Parallel()

		s := newDashboardTestServer(t,
			jsonBody(`5`),
			jsonBody(`3`),
			jsonBody(`{}`),
			jsonBody(`100.0`),
		)

		code, summary := doSummaryRequest(t, s)
		if code != http.StatusOK {
			t.Errorf("ステータスコード = %d, want %d", code, http.StatusOK)
		}
		if summary.TotalLoanRequests != 0 {
			t.Errorf("totalLoanRequests = %d, want 0", summary.TotalLoanRequests)
		}
	})

	t.Run("ローン件数がパースできない場合はゼロになること", func(t *testing.T) {
		t.Parallel()

		s := newDashboardTestServer(t,
			jsonBody(`5`),
			jsonBody(`3`),
			jsonBody(`loan service is broken`),
			jsonBody(`100.0`),
		)

		code, summary := doSummaryRequest(t, s)
		if code != http.StatusOK {
			t.Errorf("ステータスコード = %d, want %d", code, http.StatusOK)
		}
		if summary.TotalLoanRequests != 0 {
			t.Errorf("totalLoanRequests = %d, want 0", summary.TotalLoanRequests)
		}
		if summary.TotalCustomers != 5 {
			t.Errorf("totalCustomers = %d, want 5", summary.TotalCustomers)
		}
	})

	t.Run("呼び出し元のトークンが各バックエンドへ伝播されること", func(t *testing.T) {
		t.Parallel()

		var gotAuth string
		customerBackend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`5`))
		}))
		t.Cleanup(customerBackend.Close)
		otherBackend := httptest.NewServer(jsonBody(`0`))
		t.Cleanup(otherBackend.Close)

		s := newTestServer(t, serviceURLConfig{
			Customer:    customerBackend.URL,
			Employee:    otherBackend.URL,
			Transaction: otherBackend.URL,
			Loan:        otherBackend.URL,
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
		req.Header.Set("Authorization", "Bearer caller-token")
		s.router.ServeHTTP(w, req)

		if gotAuth != "Bearer caller-token" {
			t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer caller-token")
		}
	})
}
