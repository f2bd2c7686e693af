package loan

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	loandb "github.com/nao1215/bank/internal/loan/db"
	"github.com/nao1215/bank/pkg/httpclient"
	"github.com/nao1215/bank/pkg/middleware"
	"github.com/nao1215/bank/pkg/token"
)

// Server はローンサービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// queries はsqlcが生成したクエリ実行オブジェクト。
	queries *loandb.Queries
	// db はSQLiteデータベース接続。
	db *sql.DB
	// jwtSecret はサービス間呼び出し用トークンの署名秘密鍵。
	jwtSecret string
	// customerClient は顧客サービスへのHTTPクライアント。
	// ローン申請時の顧客存在確認に使用する。
	customerClient *httpclient.Client
}

// NewServer は新しいローンサーバーを生成する。
func NewServer(port string) (*Server, error) {
	sqlDB, err := sql.Open("sqlite", "/data/loan.db?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗: %w", err)
	}

	if err := initSchema(sqlDB); err != nil {
		return nil, fmt.Errorf("スキーマ初期化に失敗: %w", err)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())

	s := &Server{
		router:         router,
		port:           port,
		queries:        loandb.New(sqlDB),
		db:             sqlDB,
		jwtSecret:      getEnvOr("JWT_SECRET", "dev-secret-key"),
		customerClient: httpclient.New(getEnvOr("CUSTOMER_SERVICE_URL", "http://localhost:8081")),
	}

	if err := s.seedLoans(); err != nil {
		return nil, fmt.Errorf("サンプルデータの投入に失敗: %w", err)
	}

	s.setupRoutes()

	return s, nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	loans := s.router.Group("/loans")
	{
		// ローン申請（顧客単位）
		loans.POST("/customer/:ssnId", s.handleApply())
		// ローン一覧取得
		loans.GET("", s.handleList())
		// ローン申請数取得
		loans.GET("/count", s.handleCount())
		// 顧客のローン一覧取得
		loans.GET("/customer/:ssnId", s.handleListBySsnID())
		// ローン詳細取得
		loans.GET("/:loanId", s.handleGetByLoanID())
		// ローン更新
		loans.PUT("/:loanId", s.handleUpdate())
		// ローン削除
		loans.DELETE("/:loanId", s.handleDelete())
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "loan"})
	})
}

// applyRequest はローン申請リクエストのJSON構造。
type applyRequest struct {
	// LoanType はローン種別。省略時はPERSONAL。
	LoanType string `json:"loanType"`
	// LoanAmount は申請金額。
	LoanAmount float64 `json:"loanAmount" binding:"required"`
	// DurationMonths は返済期間（月数）。
	DurationMonths int64 `json:"durationMonths" binding:"required"`
	// Occupation は申請者の職業。
	Occupation string `json:"occupation"`
	// EmployerName は勤務先名。
	EmployerName string `json:"employerName"`
	// EmployerAddress は勤務先住所。
	EmployerAddress string `json:"employerAddress"`
	// Email は連絡用メールアドレス。
	Email string `json:"email"`
	// Address は申請者の住所。
	Address string `json:"address"`
	// MaritalStatus は婚姻状況。
	MaritalStatus string `json:"maritalStatus"`
	// ContactNumber は連絡先電話番号。
	ContactNumber string `json:"contactNumber"`
}

// updateRequest はローン更新リクエストのJSON構造。
type updateRequest struct {
	LoanType        string  `json:"loanType"`
	LoanAmount      float64 `json:"loanAmount" binding:"required"`
	DurationMonths  int64   `json:"durationMonths" binding:"required"`
	Occupation      string  `json:"occupation"`
	EmployerName    string  `json:"employerName"`
	EmployerAddress string  `json:"employerAddress"`
	Email           string  `json:"email"`
	Address         string  `json:"address"`
	MaritalStatus   string  `json:"maritalStatus"`
	ContactNumber   string  `json:"contactNumber"`
	// Status は申請状態。省略時は現在の状態を維持する。
	Status string `json:"status"`
}

// loanResponse はローンのJSONレスポンス構造。
type loanResponse struct {
	ID              int64   `json:"id"`
	LoanID          string  `json:"loanId"`
	SsnID           string  `json:"ssnId"`
	LoanType        string  `json:"loanType"`
	LoanAmount      float64 `json:"loanAmount"`
	DurationMonths  int64   `json:"durationMonths"`
	Occupation      string  `json:"occupation"`
	EmployerName    string  `json:"employerName"`
	EmployerAddress string  `json:"employerAddress"`
	Email           string  `json:"email"`
	Address         string  `json:"address"`
	MaritalStatus   string  `json:"maritalStatus"`
	ContactNumber   string  `json:"contactNumber"`
	Status          string  `json:"status"`
}

// toLoanResponse はDB行をJSONレスポンスに変換する。
func toLoanResponse(l loandb.Loan) loanResponse {
	return loanResponse{
		ID:              l.ID,
		LoanID:          l.LoanID,
		SsnID:           l.SsnID,
		LoanType:        l.LoanType,
		LoanAmount:      l.LoanAmount,
		DurationMonths:  l.DurationMonths,
		Occupation:      l.Occupation,
		EmployerName:    l.EmployerName,
		EmployerAddress: l.EmployerAddress,
		Email:           l.Email,
		Address:         l.Address,
		MaritalStatus:   l.MaritalStatus,
		ContactNumber:   l.ContactNumber,
		Status:          l.Status,
	}
}

// validateCustomer は顧客サービスへ問い合わせて顧客の実在を確認する。
// サービス間呼び出し用のトークンを発行して付与する。
func (s *Server) validateCustomer(c *gin.Context, ssnID string) error {
	serviceToken, err := token.Issue(s.jwtSecret, "loan-service")
	if err != nil {
		return err
	}
	ctx := httpclient.WithToken(c.Request.Context(), serviceToken)
	return s.customerClient.GetJSON(ctx, "/customers/"+ssnID, nil)
}

// newLoanID は新しいローンIDを生成する。
func newLoanID() string {
	return "LOAN-" + strings.ToUpper(uuid.NewString()[:8])
}

// handleApply はローン申請を処理するハンドラを返す。
// 顧客サービスで申請者の実在を確認してから申請を受け付ける。
func (s *Server) handleApply() gin.HandlerFunc {
	return func(c *gin.Context) {
		ssnID := c.Param("ssnId")

		var req applyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		if err := s.validateCustomer(c, ssnID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("SSN ID %s の顧客が見つかりません", ssnID)})
			log.Printf("顧客存在確認エラー: %v", err)
			return
		}

		if req.LoanType == "" {
			req.LoanType = "PERSONAL"
		}

		loanID := newLoanID()
		if err := s.queries.CreateLoan(c.Request.Context(), loandb.CreateLoanParams{
			LoanID:          loanID,
			SsnID:           ssnID,
			LoanType:        req.LoanType,
			LoanAmount:      req.LoanAmount,
			DurationMonths:  req.DurationMonths,
			Occupation:      req.Occupation,
			EmployerName:    req.EmployerName,
			EmployerAddress: req.EmployerAddress,
			Email:           req.Email,
			Address:         req.Address,
			MaritalStatus:   req.MaritalStatus,
			ContactNumber:   req.ContactNumber,
			Status:          "PENDING",
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ローン申請の登録に失敗しました"})
			log.Printf("ローン申請登録エラー: %v", err)
			return
		}

		created, err := s.queries.GetLoanByLoanID(c.Request.Context(), loanID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "登録したローン申請の取得に失敗しました"})
			log.Printf("ローン取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, toLoanResponse(created))
	}
}

// handleList はローン一覧取得を処理するハンドラを返す。
func (s *Server) handleList() gin.HandlerFunc {
	return func(c *gin.Context) {
		loans, err := s.queries.ListLoans(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ローン一覧の取得に失敗しました"})
			log.Printf("ローン一覧取得エラー: %v", err)
			return
		}

		responses := make([]loanResponse, 0, len(loans))
		for _, l := range loans {
			responses = append(responses, toLoanResponse(l))
		}

		c.JSON(http.StatusOK, responses)
	}
}

// handleListBySsnID は顧客のローン一覧取得を処理するハンドラを返す。
func (s *Server) handleListBySsnID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ssnID := c.Param("ssnId")
		loans, err := s.queries.ListLoansBySsnID(c.Request.Context(), ssnID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ローン一覧の取得に失敗しました"})
			log.Printf("ローン一覧取得エラー: %v", err)
			return
		}

		responses := make([]loanResponse, 0, len(loans))
		for _, l := range loans {
			responses = append(responses, toLoanResponse(l))
		}

		c.JSON(http.StatusOK, responses)
	}
}

// handleGetByLoanID はローン詳細取得を処理するハンドラを返す。
func (s *Server) handleGetByLoanID() gin.HandlerFunc {
	return func(c *gin.Context) {
		loanID := c.Param("loanId")
		l, err := s.queries.GetLoanByLoanID(c.Request.Context(), loanID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "ローン申請が見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ローン申請の取得に失敗しました"})
			log.Printf("ローン取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, toLoanResponse(l))
	}
}

// handleUpdate はローン更新を処理するハンドラを返す。
func (s *Server) handleUpdate() gin.HandlerFunc {
	return func(c *gin.Context) {
		loanID := c.Param("loanId")
		ctx := c.Request.Context()

		existing, err := s.queries.GetLoanByLoanID(ctx, loanID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "ローン申請が見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ローン申請の取得に失敗しました"})
			log.Printf("ローン取得エラー: %v", err)
			return
		}

		var req updateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		loanType := req.LoanType
		if loanType == "" {
			loanType = existing.LoanType
		}
		status := req.Status
		if status == "" {
			status = existing.Status
		}

		if err := s.queries.UpdateLoan(ctx, loandb.UpdateLoanParams{
			LoanType:        loanType,
			LoanAmount:      req.LoanAmount,
			DurationMonths:  req.DurationMonths,
			Occupation:      req.Occupation,
			EmployerName:    req.EmployerName,
			EmployerAddress: req.EmployerAddress,
			Email:           req.Email,
			Address:         req.Address,
			MaritalStatus:   req.MaritalStatus,
			ContactNumber:   req.ContactNumber,
			Status:          status,
			LoanID:          loanID,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ローン申請の更新に失敗しました"})
			log.Printf("ローン更新エラー: %v", err)
			return
		}

		updated, err := s.queries.GetLoanByLoanID(ctx, loanID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "更新後のローン申請の取得に失敗しました"})
			log.Printf("ローン取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, toLoanResponse(updated))
	}
}

// handleDelete はローン削除を処理するハンドラを返す。
func (s *Server) handleDelete() gin.HandlerFunc {
	return func(c *gin.Context) {
		loanID := c.Param("loanId")
		ctx := c.Request.Context()

		if _, err := s.queries.GetLoanByLoanID(ctx, loanID); err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "ローン申請が見つかりません"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ローン申請の取得に失敗しました"})
			log.Printf("ローン取得エラー: %v", err)
			return
		}

		if err := s.queries.DeleteLoan(ctx, loanID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ローン申請の削除に失敗しました"})
			log.Printf("ローン削除エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "ローン申請を削除しました"})
	}
}

// handleCount はローン申請数取得を処理するハンドラを返す。
// gatewayのダッシュボード集計はcountフィールドを参照する。
func (s *Server) handleCount() gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := s.queries.CountLoans(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ローン申請数の取得に失敗しました"})
			log.Printf("ローン申請数取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
