package employee

import (
	"database/sql"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	employeedb "github.com/nao1215/bank/internal/employee/db"
	"github.com/nao1215/bank/pkg/middleware"
	"github.com/nao1215/bank/pkg/token"
)

// Server は行員サービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// queries はsqlcが生成したクエリ実行オブジェクト。
	queries *employeedb.Queries
	// db はSQLiteデータベース接続。
	db *sql.DB
	// jwtSecret はログイン時に発行するトークンの署名秘密鍵。
	jwtSecret string
}

// NewServer は新しい行員サーバーを生成する。
func NewServer(port string) (*Server, error) {
	sqlDB, err := sql.Open("sqlite", "/data/employee.db?_journal_mode=WAL&_busy_timeout=5000")
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
		router:    router,
		port:      port,
		queries:   employeedb.New(sqlDB),
		db:        sqlDB,
		jwtSecret: getEnvOr("JWT_SECRET", "dev-secret-key"),
	}

	if err := s.seedEmployees(); err != nil {
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
	employees := s.router.Group("/employees")
	{
		// 行員登録
		employees.POST("/register", s.handleRegister())
		// ログイン（公開エンドポイント）
		employees.POST("/login", s.handleLogin())
		// 行員一覧取得
		employees.GET("", s.handleList())
		// 行員数取得
		employees.GET("/count", s.handleCount())
		// 行員詳細取得
		employees.GET("/:employeeId", s.handleGetByEmployeeID())
		// 行員情報更新
		employees.PUT("/:employeeId", s.handleUpdate())
		// 行員削除
		employees.DELETE("/:employeeId", s.handleDelete())
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "employee"})
	})
}

// registerRequest は行員登録リクエストのJSON構造。
type registerRequest struct {
	// EmployeeID は行員ID。省略時はサーバー側で7桁のゼロ埋め数字を採番する。
	EmployeeID string `json:"employeeId"`
	// FirstName は名。
	FirstName string `json:"firstName" binding:"required"`
	// LastName は姓。
	LastName string `json:"lastName"`
	// Email はメールアドレス。行員間で一意でなければならない。
	Email string `json:"email" binding:"required"`
	// ContactNumber は連絡先電話番号。
	ContactNumber string `json:"contactNumber"`
	// Address は住所。
	Address string `json:"address"`
	// DateOfBirth は生年月日（YYYY-MM-DD）。
	DateOfBirth string `json:"dateOfBirth"`
	// Gender は性別。
	Gender string `json:"gender"`
	// Password は平文パスワード。保存前にbcryptでハッシュ化する。
	Password string `json:"password" binding:"required"`
	// Role は行員の役割。省略時はEMPLOYEE。
	Role string `json:"role"`
}

// updateRequest は行員情報更新リクエストのJSON構造。
type updateRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName"`
	Email         string `json:"email" binding:"required"`
	ContactNumber string `json:"contactNumber"`
	Address       string `json:"address"`
	DateOfBirth   string `json:"dateOfBirth"`
	Gender        string `json:"gender"`
	Role          string `json:"role"`
	// Password が指定された場合のみパスワードを変更する。
	Password string `json:"password"`
}

// loginRequest はログインリクエストのJSON構造。
type loginRequest struct {
	// EmployeeID はログインに使用する行員ID。
	EmployeeID string `json:"employeeId" binding:"required"`
	// Password は平文パスワード。
	Password string `json:"password" binding:"required"`
}

// employeeResponse は行員のJSONレスポンス構造。パスワードハッシュは含めない。
type employeeResponse struct {
	ID            int64  `json:"id"`
	EmployeeID    string `json:"employeeId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
	Address       string `json:"address"`
	DateOfBirth   string `json:"dateOfBirth"`
	Gender        string `json:"gender"`
	Role          string `json:"role"`
}

// toEmployeeResponse はDB行をJSONレスポンスに変換する。
func toEmployeeResponse(e employeedb.Employee) employeeResponse {
	return employeeResponse{
		ID:            e.ID,
		EmployeeID:    e.EmployeeID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email,
		ContactNumber: e.ContactNumber,
		Address:       e.Address,
		DateOfBirth:   e.DateOfBirth,
		Gender:        e.Gender,
		Role:          e.Role,
	}
}

// handleRegister は行員登録を処理するハンドラを返す。
// 行員IDが未指定の場合は一意な7桁のゼロ埋め数字を採番する。
func (s *Server) handleRegister() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		ctx := c.Request.Context()

		emailExists, err := s.queries.ExistsEmployeeByEmail(ctx, req.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "メールアドレスの確認に失敗しました"})
			log.Printf("メールアドレス確認エラー: %v", err)
			return
		}
		if emailExists != 0 {
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("メールアドレス %s は既に使用されています", req.Email)})
			return
		}

		if req.EmployeeID == "" {
			employeeID, err := s.generateEmployeeID(c)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "行員IDの採番に失敗しました"})
				log.Printf("行員ID採番エラー: %v", err)
				return
			}
			req.EmployeeID = employeeID
		} else {
			exists, err := s.queries.ExistsEmployeeByEmployeeID(ctx, req.EmployeeID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "行員の確認に失敗しました"})
				log.Printf("行員存在確認エラー: %v", err)
				return
			}
			if exists != 0 {
				c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("行員ID %s は既に存在します", req.EmployeeID)})
				return
			}
		}

		if req.Role == "" {
			req.Role = "EMPLOYEE"
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "パスワードのハッシュ化に失敗しました"})
			log.Printf("パスワードハッシュ化エラー: %v", err)
			return
		}

		if err := s.queries.CreateEmployee(ctx, employeedb.CreateEmployeeParams{
			EmployeeID:    req.EmployeeID,
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Email:         req.Email,
			ContactNumber: req.ContactNumber,
			Address:       req.Address,
			DateOfBirth:   req.DateOfBirth,
			Gender:        req.Gender,
			PasswordHash:  string(hash),
			Role:          req.Role,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "行員の登録に失敗しました"})
			log.Printf("行員登録エラー: %v", err)
			return
		}

		created, err := s.queries.GetEmployeeByEmployeeID(ctx, req.EmployeeID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "登録した行員の取得に失敗しました"})
			log.Printf("行員取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, toEmployeeResponse(created))
	}
}

// handleLogin はログインを処理するハンドラを返す。
// 認証に成功すると行員IDをサブジェクトとするベアラートークンを発行する。
func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		emp, err := s.queries.GetEmployeeByEmployeeID(c.Request.Context(), req.EmployeeID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "認証情報が正しくありません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "行員の取得に失敗しました"})
			log.Printf("行員取得エラー: %v", err)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "認証情報が正しくありません"})
			return
		}

		signed, err := token.Issue(s.jwtSecret, emp.EmployeeID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "トークンの発行に失敗しました"})
			log.Printf("トークン発行エラー: %v", err)
			return
		}

		name := emp.FirstName
		if emp.LastName != "" {
			name += " " + emp.LastName
		}

		c.JSON(http.StatusOK, gin.H{
			"token":   signed,
			"message": "Login successful",
			"role":    emp.Role,
			"userId":  emp.EmployeeID,
			"name":    name,
		})
	}
}

// handleList は行員一覧取得を処理するハンドラを返す。
func (s *Server) handleList() gin.HandlerFunc {
	return func(c *gin.Context) {
		employees, err := s.queries.ListEmployees(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "行員一覧の取得に失敗しました"})
			log.Printf("行員一覧取得エラー: %v", err)
			return
		}

		responses := make([]employeeResponse, 0, len(employees))
		for _, emp := range employees {
			responses = append(responses, toEmployeeResponse(emp))
		}

		c.JSON(http.StatusOK, responses)
	}
}

// handleGetByEmployeeID は行員詳細取得を処理するハンドラを返す。
func (s *Server) handleGetByEmployeeID() gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.Param("employeeId")
		emp, err := s.queries.GetEmployeeByEmployeeID(c.Request.Context(), employeeID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "行員が見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "行員の取得に失敗しました"})
			log.Printf("行員取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, toEmployeeResponse(emp))
	}
}

// handleUpdate は行員情報更新を処理するハンドラを返す。
func (s *Server) handleUpdate() gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.Param("employeeId")
		ctx := c.Request.Context()

		existing, err := s.queries.GetEmployeeByEmployeeID(ctx, employeeID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "行員が見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "行員の取得に失敗しました"})
			log.Printf("行員取得エラー: %v", err)
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

		role := req.Role
		if role == "" {
			role = existing.Role
		}

		if err := s.queries.UpdateEmployee(ctx, employeedb.UpdateEmployeeParams{
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Email:         req.Email,
			ContactNumber: req.ContactNumber,
			Address:       req.Address,
			DateOfBirth:   req.DateOfBirth,
			Gender:        req.Gender,
			PasswordHash:  passwordHash,
			Role:          role,
			EmployeeID:    employeeID,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "行員の更新に失敗しました"})
			log.Printf("行員更新エラー: %v", err)
			return
		}

		updated, err := s.queries.GetEmployeeByEmployeeID(ctx, employeeID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "更新後の行員の取得に失敗しました"})
			log.Printf("行員取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, toEmployeeResponse(updated))
	}
}

// handleDelete は行員削除を処理するハンドラを返す。
func (s *Server) handleDelete() gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.Param("employeeId")
		ctx := c.Request.Context()

		if _, err := s.queries.GetEmployeeByEmployeeID(ctx, employeeID); err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "行員が見つかりません"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "行員の取得に失敗しました"})
			log.Printf("行員取得エラー: %v", err)
			return
		}

		if err := s.queries.DeleteEmployee(ctx, employeeID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "行員の削除に失敗しました"})
			log.Printf("行員削除エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "行員を削除しました"})
	}
}

// handleCount は行員数取得を処理するハンドラを返す。
// gatewayのダッシュボード集計のため、ボディは数値のみで応答する。
func (s *Server) handleCount() gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := s.queries.CountEmployees(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "行員数の取得に失敗しました"})
			log.Printf("行員数取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, count)
	}
}

// generateEmployeeID は未使用の7桁ゼロ埋め行員IDを採番する。
func (s *Server) generateEmployeeID(c *gin.Context) (string, error) {
	for {
		employeeID := fmt.Sprintf("%07d", 1000000+rand.IntN(9000000))
		exists, err := s.queries.ExistsEmployeeByEmployeeID(c.Request.Context(), employeeID)
		if err != nil {
			return "", err
		}
		if exists == 0 {
			return employeeID, nil
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
