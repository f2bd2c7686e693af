package transaction

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	transactiondb "github.com/nao1215/bank/internal/transaction/db"
	"github.com/nao1215/bank/pkg/httpclient"
	"github.com/nao1215/bank/pkg/middleware"
	"github.com/nao1215/bank/pkg/token"
)

// Server は取引サービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// queries はsqlcが生成したクエリ実行オブジェクト。
	queries *transactiondb.Queries
	// db はSQLiteデータベース接続。
	db *sql.DB
	// jwtSecret はサービス間呼び出し用トークンの署名秘密鍵。
	jwtSecret string
	// customerClient は顧客サービスへのHTTPクライアント。
	// 取引記録時の顧客存在確認に使用する。
	customerClient *httpclient.Client
}

// NewServer は新しい取引サーバーを生成する。
func NewServer(port string) (*Server, error) {
	sqlDB, err := sql.Open("sqlite", "/data/transaction.db?_journal_mode=WAL&_busy_timeout=5000")
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
		queries:        transactiondb.New(sqlDB),
		db:             sqlDB,
		jwtSecret:      getEnvOr("JWT_SECRET", "dev-secret-key"),
		customerClient: httpclient.New(getEnvOr("CUSTOMER_SERVICE_URL", "http://localhost:8081")),
	}

	if err := s.seedTransactions(); err != nil {
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
	transactions := s.router.Group("/transactions")
	{
		// 取引記録（顧客単位）
		transactions.POST("/customer/:ssnId", s.handleCreate())
		// 取引一覧取得
		transactions.GET("", s.handleList())
		// 取引数取得
		transactions.GET("/count", s.handleCount())
		// 銀行全体の残高取得
		transactions.GET("/total-balance", s.handleTotalBalance())
		// 顧客の取引履歴取得（日時降順）
		transactions.GET("/customer/:ssnId", s.handleListBySsnID())
		// 取引詳細取得
		transactions.GET("/:transactionId", s.handleGetByTransactionID())
		// 取引更新
		transactions.PUT("/:transactionId", s.handleUpdate())
		// 取引削除
		transactions.DELETE("/:transactionId", s.handleDelete())
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "transaction"})
	})
}

// createRequest は取引記録リクエストのJSON構造。
type createRequest struct {
	// AccountID は取引対象の口座ID。
	AccountID string `json:"accountId"`
	// TransactionType は取引種別（CREDIT / DEBIT）。
	TransactionType string `json:"transactionType" binding:"required,oneof=CREDIT DEBIT"`
	// ModeOfTransaction は取引手段（DEPOSIT / WITHDRAWAL / TRANSFER など）。
	ModeOfTransaction string `json:"modeOfTransaction"`
	// Amount は取引金額。
	Amount float64 `json:"amount" binding:"required,gt=0"`
	// TransactionDate は取引日時（RFC3339）。省略時は現在時刻。
	TransactionDate string `json:"transactionDate"`
}

// updateRequest は取引更新リクエストのJSON構造。
type updateRequest struct {
	AccountID         string  `json:"accountId"`
	TransactionType   string  `json:"transactionType" binding:"required,oneof=CREDIT DEBIT"`
	ModeOfTransaction string  `json:"modeOfTransaction"`
	Amount            float64 `json:"amount" binding:"required,gt=0"`
	TransactionDate   string  `json:"transactionDate"`
}

// transactionResponse は取引のJSONレスポンス構造。
type transactionResponse struct {
	ID                int64   `json:"id"`
	TransactionID     string  `json:"transactionId"`
	SsnID             string  `json:"ssnId"`
	AccountID         string  `json:"accountId"`
	TransactionType   string  `json:"transactionType"`
	ModeOfTransaction string  `json:"modeOfTransaction"`
	Amount            float64 `json:"amount"`
	TransactionDate   string  `json:"transactionDate"`
}

// toTransactionResponse はDB行をJSONレスポンスに変換する。
func toTransactionResponse(tx transactiondb.Transaction) transactionResponse {
	return transactionResponse{
		ID:                tx.ID,
		TransactionID:     tx.TransactionID,
		SsnID:             tx.SsnID,
		AccountID:         tx.AccountID,
		TransactionType:   tx.TransactionType,
		ModeOfTransaction: tx.ModeOfTransaction,
		Amount:            tx.Amount,
		TransactionDate:   tx.TransactionDate,
	}
}

// validateCustomer は顧客サービスへ問い合わせて顧客の実在を確認する。
// サービス間呼び出し用のトークンを発行して付与する。
func (s *Server) validateCustomer(c *gin.Context, ssnID string) error {
	serviceToken, err := token.Issue(s.jwtSecret, "transaction-service")
	if err != nil {
		return err
	}
	ctx := httpclient.WithToken(c.Request.Context(), serviceToken)
	return s.customerClient.GetJSON(ctx, "/customers/"+ssnID, nil)
}

// handleCreate は取引記録を処理するハンドラを返す。
// 顧客サービスで顧客の実在を確認してから取引を記録する。
func (s *Server) handleCreate() gin.HandlerFunc {
	return func(c *gin.Context) {
		ssnID := c.Param("ssnId")

		var req createRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		if err := s.validateCustomer(c, ssnID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("SSN ID %s の顧客が見つかりません", ssnID)})
			log.Printf("顧客存在確認エラー: %v", err)
			return
		}

		if req.TransactionDate == "" {
			req.TransactionDate = time.Now().Format(time.RFC3339)
		}

		transactionID := uuid.NewString()
		if err := s.queries.CreateTransaction(c.Request.Context(), transactiondb.CreateTransactionParams{
			TransactionID:     transactionID,
			SsnID:             ssnID,
			AccountID:         req.AccountID,
			TransactionType:   req.TransactionType,
			ModeOfTransaction: req.ModeOfTransaction,
			Amount:            req.Amount,
			TransactionDate:   req.TransactionDate,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "取引の記録に失敗しました"})
			log.Printf("取引記録エラー: %v", err)
			return
		}

		created, err := s.queries.GetTransactionByTransactionID(c.Request.Context(), transactionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "記録した取引の取得に失敗しました"})
			log.Printf("取引取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, toTransactionResponse(created))
	}
}

// handleList は取引一覧取得を処理するハンドラを返す。
func (s *Server) handleList() gin.HandlerFunc {
	return func(c *gin.Context) {
		transactions, err := s.queries.ListTransactions(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "取引一覧の取得に失敗しました"})
			log.Printf("取引一覧取得エラー: %v", err)
			return
		}

		responses := make([]transactionResponse, 0, len(transactions))
		for _, tx := range transactions {
			responses = append(responses, toTransactionResponse(tx))
		}

		c.JSON(http.StatusOK, responses)
	}
}

// handleListBySsnID は顧客の取引履歴取得を処理するハンドラを返す。
// 取引日時の降順で返す。
func (s *Server) handleListBySsnID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ssnID := c.Param("ssnId")
		transactions, err := s.queries.ListTransactionsBySsnID(c.Request.Context(), ssnID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "取引履歴の取得に失敗しました"})
			log.Printf("取引履歴取得エラー: %v", err)
			return
		}

		responses := make([]transactionResponse, 0, len(transactions))
		for _, tx := range transactions {
			responses = append(responses, toTransactionResponse(tx))
		}

		c.JSON(http.StatusOK, responses)
	}
}

// handleGetByTransactionID は取引詳細取得を処理するハンドラを返す。
func (s *Server) handleGetByTransactionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		transactionID := c.Param("transactionId")
		tx, err := s.queries.GetTransactionByTransactionID(c.Request.Context(), transactionID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "取引が見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "取引の取得に失敗しました"})
			log.Printf("取引取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, toTransactionResponse(tx))
	}
}

// handleUpdate は取引更新を処理するハンドラを返す。
func (s *Server) handleUpdate() gin.HandlerFunc {
	return func(c *gin.Context) {
		transactionID := c.Param("transactionId")
		ctx := c.Request.Context()

		existing, err := s.queries.GetTransactionByTransactionID(ctx, transactionID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "取引が見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "取引の取得に失敗しました"})
			log.Printf("取引取得エラー: %v", err)
			return
		}

		var req updateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		// 未指定の項目は既存の値を維持する。
		accountID := req.AccountID
		if accountID == "" {
			accountID = existing.AccountID
		}
		modeOfTransaction := req.ModeOfTransaction
		if modeOfTransaction == "" {
			modeOfTransaction = existing.ModeOfTransaction
		}
		transactionDate := req.TransactionDate
		if transactionDate == "" {
			transactionDate = existing.TransactionDate
		}

		if err := s.queries.UpdateTransaction(ctx, transactiondb.UpdateTransactionParams{
			AccountID:         accountID,
			TransactionType:   req.TransactionType,
			ModeOfTransaction: modeOfTransaction,
			Amount:            req.Amount,
			TransactionDate:   transactionDate,
			TransactionID:     transactionID,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "取引の更新に失敗しました"})
			log.Printf("取引更新エラー: %v", err)
			return
		}

		updated, err := s.queries.GetTransactionByTransactionID(ctx, transactionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "更新後の取引の取得に失敗しました"})
			log.Printf("取引取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, toTransactionResponse(updated))
	}
}

// handleDelete は取引削除を処理するハンドラを返す。
func (s *Server) handleDelete() gin.HandlerFunc {
	return func(c *gin.Context) {
		transactionID := c.Param("transactionId")
		ctx := c.Request.Context()

		if _, err := s.queries.GetTransactionByTransactionID(ctx, transactionID); err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "取引が見つかりません"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "取引の取得に失敗しました"})
			log.Printf("取引取得エラー: %v", err)
			return
		}

		if err := s.queries.DeleteTransaction(ctx, transactionID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "取引の削除に失敗しました"})
			log.Printf("取引削除エラー: %v", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// handleCount は取引数取得を処理するハンドラを返す。
// ボディは数値のみで応答する。
func (s *Server) handleCount() gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := s.queries.CountTransactions(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "取引数の取得に失敗しました"})
			log.Printf("取引数取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, count)
	}
}

// handleTotalBalance は銀行全体の残高取得を処理するハンドラを返す。
// CREDITの合計からDEBITの合計を引いた値を数値のみで応答する。
// gatewayのダッシュボード集計がこの値を参照する。
func (s *Server) handleTotalBalance() gin.HandlerFunc {
	return func(c *gin.Context) {
		total, err := s.queries.TotalBalance(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "残高の取得に失敗しました"})
			log.Printf("残高取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, total)
	}
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
