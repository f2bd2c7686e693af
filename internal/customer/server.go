package customer

import (
	"database/sql"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	customerdb "github.com/nao1215/bank/internal/customer/db"
	"github.com/nao1215/bank/pkg/middleware"
	"github.com/nao1215/bank/pkg/token"
)

// Server は顧客サービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// queries はsqlcが生成したクエリ実行オブジェクト。
	queries *customerdb.Queries
	// db はSQLiteデータベース接続。
	db *sql.DB
	// jwtSecret はログイン時に発行するトークンの署名秘密鍵。
	jwtSecret string
}

// NewServer は新しい顧客サーバーを生成する。
// SQLiteデータベースの初期化とスキーマ作成、サンプルデータの投入を行う。
func NewServer(port string) (*Server, error) {
	sqlDB, err := sql.Open("sqlite", "/data/customer.db?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗: %w", err)
	}

	if err := initSchema(sqlDB); err != nil {
		return nil, fmt.Errorf("スキーマ初期化に失敗: %w", err)
	}

	jwtSecret := getEnvOr("JWT_SECRET", "dev-secret-key")

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())

	s := &Server{
		router:    router,
		port:      port,
		queries:   customerdb.New(sqlDB),
		db:        sqlDB,
		jwtSecret: jwtSecret,
	}

	if err := s.seedCustomers(); err != nil {
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
	customers := s.router.Group("/customers")
	{
		// 顧客登録（公開エンドポイント）
		customers.POST("/register", s.handleRegister())
		// ログイン（公開エンドポイント）
		customers.POST("/login", s.handleLogin())
		// 顧客一覧取得
		customers.GET("", s.handleList())
		// 顧客数取得
		customers.GET("/count", s.handleCount())
		// 顧客詳細取得
		customers.GET("/:ssnId", s.handleGetBySsnID())
		// 顧客情報更新
		customers.PUT("/:ssnId", s.handleUpdate())
		// 顧客削除
		customers.DELETE("/:ssnId", s.handleDelete())
		// 口座の有効化
		customers.PUT("/:ssnId/activate", s.handleSetActive(true))
		// 口座の無効化
		customers.PUT("/:ssnId/deactivate", s.handleSetActive(false))
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "customer"})
	})
}

// registerRequest は顧客登録リクエストのJSON構造。
type registerRequest struct {
	// SsnID は顧客のSSN ID。省略時はサーバー側で採番する。
	SsnID string `json:"ssnId"`
	// FirstName は名。
	FirstName string `json:"firstName" binding:"required"`
	// LastName は姓。
	LastName string `json:"lastName"`
	// Email はメールアドレス。
	Email string `json:"email"`
	// Address は住所。
	Address string `json:"address"`
	// ContactNumber は連絡先電話番号。
	ContactNumber string `json:"contactNumber"`
	// AadharNumber はAadhar番号。
	AadharNumber string `json:"aadharNumber"`
	// PanNumber はPAN番号。
	PanNumber string `json:"panNumber"`
	// AccountNumber は口座番号。省略時はサーバー側で採番する。
	AccountNumber string `json:"accountNumber"`
	// DateOfBirth は生年月日（YYYY-MM-DD）。
	DateOfBirth string `json:"dateOfBirth"`
	// Gender は性別。
	Gender string `json:"gender"`
	// MaritalStatus は婚姻状況。
	MaritalStatus string `json:"maritalStatus"`
	// Password は平文パスワード。保存前にbcryptでハッシュ化する。
	Password string `json:"password" binding:"required"`
}

// updateRequest は顧客情報更新リクエストのJSON構造。
type updateRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactNumber"`
	AadharNumber  string `json:"aadharNumber"`
	PanNumber     string `json:"panNumber"`
	AccountNumber string `json:"accountNumber"`
	DateOfBirth   string `json:"dateOfBirth"`
	Gender        string `json:"gender"`
	MaritalStatus string `json:"maritalStatus"`
	// Password が指定された場合のみパスワードを変更する。
	Password string `json:"password"`
}

// loginRequest はログインリクエストのJSON構造。
type loginRequest struct {
	// SsnID はログインに使用する顧客のSSN ID。
	SsnID string `json:"ssnId" binding:"required"`
	// Password は平文パスワード。
	Password string `json:"password" binding:"required"`
}

// customerResponse は顧客のJSONレスポンス構造。パスワードハッシュは含めない。
type customerResponse struct {
	ID            int64  `json:"id"`
	SsnID         string `json:"ssnId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactNumber"`
	AadharNumber  string `json:"aadharNumber"`
	PanNumber     string `json:"panNumber"`
	AccountNumber string `json:"accountNumber"`
	DateOfBirth   string `json:"dateOfBirth"`
	Gender        string `json:"gender"`
	MaritalStatus string `json:"maritalStatus"`
	Role          string `json:"role"`
	IsActive      bool   `json:"isActive"`
}

// toCustomerResponse はDB行をJSONレスポンスに変換する。
func toCustomerResponse(c customerdb.Customer) customerResponse {
	return customerResponse{
		ID:            c.ID,
		SsnID:         c.SsnID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Email:         c.Email,
		Address:       c.Address,
		ContactNumber: c.ContactNumber,
		AadharNumber:  c.AadharNumber,
		PanNumber:     c.PanNumber,
		AccountNumber: c.AccountNumber,
		DateOfBirth:   c.DateOfBirth,
		Gender:        c.Gender,
		MaritalStatus: c.MaritalStatus,
		Role:          c.Role,
		IsActive:      c.IsActive != 0,
	}
}

// handleRegister は顧客登録を処理するハンドラを返す。
// SSN IDと口座番号が未指定の場合はサーバー側で一意な値を採番する。
func (s *Server) handleRegister() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		ctx := c.Request.Context()

		if req.SsnID == "" {
			ssnID, err := s.generateSsnID(c)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "SSN IDの採番に失敗しました"})
				log.Printf("SSN ID採番エラー: %v", err)
				return
			}
			req.SsnID = ssnID
		} else {
			exists, err := s.queries.ExistsCustomerBySsnID(ctx, req.SsnID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "顧客の確認に失敗しました"})
				log.Printf("顧客存在確認エラー: %v", err)
				return
			}
			if exists != 0 {
				c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("SSN ID %s の顧客は既に存在します", req.SsnID)})
				return
			}
		}

		if req.AccountNumber == "" {
			accountNumber, err := s.generateAccountNumber(c)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "口座番号の採番に失敗しました"})
				log.Printf("口座番号採番エラー: %v", err)
				return
			}
			req.AccountNumber = accountNumber
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "パスワードのハッシュ化に失敗しました"})
			log.Printf("パスワードハッシュ化エラー: %v", err)
			return
		}

		if err := s.queries.CreateCustomer(ctx, customerdb.CreateCustomerParams{
			SsnID:         req.SsnID,
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Email:         req.Email,
			Address:       req.Address,
			ContactNumber: req.ContactNumber,
			AadharNumber:  req.AadharNumber,
			PanNumber:     req.PanNumber,
			AccountNumber: req.AccountNumber,
			DateOfBirth:   req.DateOfBirth,
			Gender:        req.Gender,
			MaritalStatus: req.MaritalStatus,
			PasswordHash:  string(hash),
			Role:          "CUSTOMER",
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "顧客の登録に失敗しました"})
			log.Printf("顧客登録エラー: %v", err)
			return
		}

		created, err := s.queries.GetCustomerBySsnID(ctx, req.SsnID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "登録した顧客の取得に失敗しました"})
			log.Printf("顧客取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, toCustomerResponse(created))
	}
}

// handleLogin はログインを処理するハンドラを返す。
// 認証に成功するとSSN IDをサブジェクトとするベアラートークンを発行する。
// 無効化された口座のログインは拒否する。
func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		cust, err := s.queries.GetCustomerBySsnID(c.Request.Context(), req.SsnID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "認証情報が正しくありません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "顧客の取得に失敗しました"})
			log.Printf("顧客取得エラー: %v", err)
			return
		}

		if cust.IsActive == 0 {
			c.JSON(http.StatusForbidden, gin.H{"error": "口座が無効化されています"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(cust.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "認証情報が正しくありません"})
			return
		}

		signed, err := token.Issue(s.jwtSecret, cust.SsnID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "トークンの発行に失敗しました"})
			log.Printf("トークン発行エラー: %v", err)
			return
		}

		name := cust.FirstName
		if cust.LastName != "" {
			name += " " + cust.LastName
		}

		c.JSON(http.StatusOK, gin.H{
			"token":   signed,
			"message": "Login successful",
			"role":    cust.Role,
			"userId":  cust.SsnID,
			"name":    name,
		})
	}
}

// handleList は顧客一覧取得を処理するハンドラを返す。
func (s *Server) handleList() gin.HandlerFunc {
	return func(c *gin.Context) {
		customers, err := s.queries.ListCustomers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "顧客一覧の取得に失敗しました"})
			log.Printf("顧客一覧取得エラー: %v", err)
			return
		}

		responses := make([]customerResponse, 0, len(customers))
		for _, cust := range customers {
			responses = append(responses, toCustomerResponse(cust))
		}

		c.JSON(http.StatusOK, responses)
	}
}

// handleGetBySsnID は顧客詳細取得を処理するハンドラを返す。
// loan/transactionサービスが顧客の存在確認にも使用する。
func (s *Server) handleGetBySsnID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ssnID := c.Param("ssnId")
		cust, err := s.queries.GetCustomerBySsnID(c.Request.Context(), ssnID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "顧客が見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "顧客の取得に失敗しました"})
			log.Printf("顧客取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, toCustomerResponse(cust))
	}
}

// handleUpdate は顧客情報更新を処理するハンドラを返す。
// パスワードはリクエストで指定された場合のみ変更する。
func (s *Server) handleUpdate() gin.HandlerFunc {
	return func(c *gin.Context) {
		ssnID := c.Param("ssnId")
		ctx := c.Request.Context()

		existing, err := s.queries.GetCustomerBySsnID(ctx, ssnID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "顧客が見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "顧客の取得に失敗しました"})
			log.Printf("顧客取得エラー: %v", err)
			return
		}

		var req updateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		passwordHash := existing.PasswordHash
		if req.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "パスワードのハッシュ化に失敗しました"})
				log.Printf("パスワードハッシュ化エラー: %v", err)
				return
			}
			passwordHash = string(hash)
		}

		if err := s.queries.UpdateCustomer(ctx, customerdb.UpdateCustomerParams{
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Email:         req.Email,
			Address:       req.Address,
			ContactNumber: req.ContactNumber,
			AadharNumber:  req.AadharNumber,
			PanNumber:     req.PanNumber,
			AccountNumber: req.AccountNumber,
			DateOfBirth:   req.DateOfBirth,
			Gender:        req.Gender,
			MaritalStatus: req.MaritalStatus,
			PasswordHash:  passwordHash,
			SsnID:         ssnID,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "顧客の更新に失敗しました"})
			log.Printf("顧客更新エラー: %v", err)
			return
		}

		updated, err := s.queries.GetCustomerBySsnID(ctx, ssnID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "更新後の顧客の取得に失敗しました"})
			log.Printf("顧客取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, toCustomerResponse(updated))
	}
}

// handleDelete は顧客削除を処理するハンドラを返す。
func (s *Server) handleDelete() gin.HandlerFunc {
	return func(c *gin.Context) {
		ssnID := c.Param("ssnId")
		ctx := c.Request.Context()

		if _, err := s.queries.GetCustomerBySsnID(ctx, ssnID); err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "顧客が見つかりません"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "顧客の取得に失敗しました"})
			log.Printf("顧客取得エラー: %v", err)
			return
		}

		if err := s.queries.DeleteCustomer(ctx, ssnID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "顧客の削除に失敗しました"})
			log.Printf("顧客削除エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "顧客を削除しました"})
	}
}

// handleCount は顧客数取得を処理するハンドラを返す。
// gatewayのダッシュボード集計のため、ボディは数値のみで応答する。
func (s *Server) handleCount() gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := s.queries.CountCustomers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "顧客数の取得に失敗しました"})
			log.Printf("顧客数取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, count)
	}
}

// handleSetActive は口座の有効化/無効化を処理するハンドラを返す。
func (s *Server) handleSetActive(active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ssnID := c.Param("ssnId")
		ctx := c.Request.Context()

		if _, err := s.queries.GetCustomerBySsnID(ctx, ssnID); err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "顧客が見つかりません"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "顧客の取得に失敗しました"})
			log.Printf("顧客取得エラー: %v", err)
			return
		}

		isActive := int64(0)
		if active {
			isActive = 1
		}
		if err := s.queries.SetCustomerActive(ctx, customerdb.SetCustomerActiveParams{
			IsActive: isActive,
			SsnID:    ssnID,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "口座状態の更新に失敗しました"})
			log.Printf("口座状態更新エラー: %v", err)
			return
		}

		updated, err := s.queries.GetCustomerBySsnID(ctx, ssnID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "更新後の顧客の取得に失敗しました"})
			log.Printf("顧客取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, toCustomerResponse(updated))
	}
}

// generateSsnID は未使用の7桁SSN IDを採番する。
func (s *Server) generateSsnID(c *gin.Context) (string, error) {
	for {
		ssnID := fmt.Sprintf("%d", 1000000+rand.IntN(9000000))
		exists, err := s.queries.ExistsCustomerBySsnID(c.Request.Context(), ssnID)
		if err != nil {
			return "", err
		}
		if exists == 0 {
			return ssnID, nil
		}
	}
}

// generateAccountNumber は未使用の口座番号を採番する。
func (s *Server) generateAccountNumber(c *gin.Context) (string, error) {
	for {
		accountNumber := fmt.Sprintf("ACC%d%04d", time.Now().UnixMilli(), rand.IntN(10000))
		exists, err := s.queries.ExistsCustomerByAccountNumber(c.Request.Context(), accountNumber)
		if err != nil {
			return "", err
		}
		if exists == 0 {
			return accountNumber, nil
		}
	}
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
