package employee

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	employeedb "github.com/nao1215/bank/internal/employee/db"
	"github.com/nao1215/bank/pkg/middleware"
	"github.com/nao1215/bank/pkg/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testJWTSecret = "test-secret-key"

// newTestServer はテスト用の行員サーバーを生成する。
// インメモリSQLiteを使用し、サンプルデータは投入しない。
func newTestServer(t *testing.T) *Server {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("インメモリDB接続に失敗: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	if err := initSchema(sqlDB); err != nil {
		t.Fatalf("スキーマ初期化に失敗: %v", err)
	}

	router := gin.New()
	router.Use(middleware.Recovery())

	s := &Server{
		router:    router,
		port:      "0",
		queries:   employeedb.New(sqlDB),
		db:        sqlDB,
		jwtSecret: testJWTSecret,
	}
	s.setupRoutes()

	return s
}

// seedEmployee はテスト用の行員を直接DBに投入する。
func seedEmployee(t *testing.T, s *Server, employeeID, firstName, lastName, password, role string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("パスワードハッシュ化に失敗: %v", err)
	}

	if err := s.queries.CreateEmployee(context.Background(), employeedb.CreateEmployeeParams{
		EmployeeID:    employeeID,
		FirstName:     firstName,
		LastName:      lastName,
		Email:         firstName + "." + employeeID + "@bank.example.com",
		ContactNumber: "0000000000",
		Address:       "Test Street",
		DateOfBirth:   "1990-01-01",
		Gender:        "MALE",
		PasswordHash:  string(hash),
		Role:          role,
	}); err != nil {
		t.Fatalf("テスト行員の投入に失敗: %v", err)
	}
}

// doJSON はJSONボディ付きのリクエストを実行してレスポンスを返す。
func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("リクエストボディのエンコードに失敗: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)
	return w
}

func TestHandleRegister(t *testing.T) {
	t.Parallel()

	t.Run("行員を登録できる", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		w := doJSON(t, s, http.MethodPost, "/employees/register", map[string]any{
			"employeeId": "1000100",
			"firstName":  "Alice",
			"lastName":   "Brown",
			"email":      "alice.brown@bank.example.com",
			"password":   "secret123",
		})

		if w.Code != http.StatusCreated {
			t.Fatalf("ステータスコード: got %d, want %d", w.Code, http.StatusCreated)
		}

		var got employeeResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("レスポンスのデコードに失敗: %v", err)
		}
		if got.EmployeeID != "1000100" {
			t.Errorf("employeeId: got %s, want 1000100", got.EmployeeID)
		}
		if got.Role != "EMPLOYEE" {
			t.Errorf("role: got %s, want EMPLOYEE", got.Role)
		}
		if strings.Contains(w.Body.String(), "passwordHash") {
			t.Error("レスポンスにパスワードハッシュを含めてはならない")
		}
	})

	t.Run("行員ID未指定の場合は7桁のゼロ埋め数字で採番される", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		w := doJSON(t, s, http.MethodPost, "/employees/register", map[string]any{
			"firstName": "Bob",
			"email":     "bob@bank.example.com",
			"password":  "secret123",
		})

		if w.Code != http.StatusCreated {
			t.Fatalf("ステータスコード: got %d, want %d", w.Code, http.StatusCreated)
		}

		var got employeeResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("レスポンスのデコードに失敗: %v", err)
		}
		if len(got.EmployeeID) != 7 {
			t.Errorf("採番されたemployeeIdは7桁であるべき: got %s", got.EmployeeID)
		}
	})

	t.Run("メールアドレスが重複する場合は409を返す", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		seedEmployee(t, s, "1000101", "Carol", "White", "secret123", "EMPLOYEE")

		w := doJSON(t, s, http.MethodPost, "/employees/register", map[string]any{
			"firstName": "Carol2",
			"email":     "Carol.1000101@bank.example.com",
			"password":  "secret123",
		})

		if w.Code != http.StatusConflict {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusConflict)
		}
	})

	t.Run("MANAGERロールを指定して登録できる", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		w := doJSON(t, s, http.MethodPost, "/employees/register", map[string]any{
			"firstName": "Dana",
			"email":     "dana@bank.example.com",
			"password":  "secret123",
			"role":      "MANAGER",
		})

		if w.Code != http.StatusCreated {
			t.Fatalf("ステータスコード: got %d, want %d", w.Code, http.StatusCreated)
		}

		var got employeeResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("レスポンスのデコードに失敗: %v", err)
		}
		if got.Role != "MANAGER" {
			t.Errorf("role: got %s, want MANAGER", got.Role)
		}
	})

	t.Run("必須フィールドがない場合は400を返す", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		w := doJSON(t, s, http.MethodPost, "/employees/register", map[string]any{
			"firstName": "NoEmail",
			"password":  "secret123",
		})

		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestHandleLogin(t *testing.T) {
	t.Parallel()

	t.Run("正しい認証情報でトークンを取得できる", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		seedEmployee(t, s, "1000110", "Dave", "Green", "secret123", "MANAGER")

		w := doJSON(t, s, http.MethodPost, "/employees/login", map[string]any{
			"employeeId": "1000110",
			"password":   "secret123",
		})

		if w.Code != http.StatusOK {
			t.Fatalf("ステータスコード: got %d, want %d", w.Code, http.StatusOK)
		}

		var got struct {
			Token   string `json:"token"`
			Message string `json:"message"`
			Role    string `json:"role"`
			UserID  string `json:"userId"`
			Name    string `json:"name"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("レスポンスのデコードに失敗: %v", err)
		}
		if got.Message != "Login successful" {
			t.Errorf("message: got %s, want Login successful", got.Message)
		}
		if got.Role != "MANAGER" {
			t.Errorf("role: got %s, want MANAGER", got.Role)
		}
		if got.Name != "Dave Green" {
			t.Errorf("name: got %s, want Dave Green", got.Name)
		}

		subject, err := token.Validate(testJWTSecret, got.Token)
		if err != nil {
			t.Fatalf("発行されたトークンの検証に失敗: %v", err)
		}
		if subject != "1000110" {
			t.Errorf("トークンのサブジェクト: got %s, want 1000110", subject)
		}
	})

	t.Run("パスワードが誤っている場合は401を返す", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		seedEmployee(t, s, "1000111", "Eve", "Black", "secret123", "EMPLOYEE")

		w := doJSON(t, s, http.MethodPost, "/employees/login", map[string]any{
			"employeeId": "1000111",
			"password":   "wrong-password",
		})

		if w.Code != http.StatusUnauthorized {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("存在しない行員の場合は401を返す", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		w := doJSON(t, s, http.MethodPost, "/employees/login", map[string]any{
			"employeeId": "9999999",
			"password":   "secret123",
		})

		if w.Code != http.StatusUnauthorized {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})
}

func TestHandleGetByEmployeeID(t *testing.T) {
	t.Parallel()

	t.Run("行員詳細を取得できる", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		seedEmployee(t, s, "1000120", "Grace", "Lee", "secret123", "EMPLOYEE")

		w := doJSON(t, s, http.MethodGet, "/employees/1000120", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("ステータスコード: got %d, want %d", w.Code, http.StatusOK)
		}

		var got employeeResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("レスポンスのデコードに失敗: %v", err)
		}
		if got.FirstName != "Grace" {
			t.Errorf("firstName: got %s, want Grace", got.FirstName)
		}
	})

	t.Run("存在しない行員の場合は404を返す", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		w := doJSON(t, s, http.MethodGet, "/employees/9999999", nil)

		if w.Code != http.StatusNotFound {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}

func TestHandleListAndCount(t *testing.T) {
	t.Parallel()

	t.Run("行員一覧と件数を取得できる", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		seedEmployee(t, s, "1000130", "Henry", "Kim", "secret123", "EMPLOYEE")
		seedEmployee(t, s, "1000131", "Iris", "Chen", "secret123", "MANAGER")

		w := doJSON(t, s, http.MethodGet, "/employees", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("ステータスコード: got %d, want %d", w.Code, http.StatusOK)
		}

		var employees []employeeResponse
		if err := json.Unmarshal(w.Body.Bytes(), &employees); err != nil {
			t.Fatalf("レスポンスのデコードに失敗: %v", err)
		}
		if len(employees) != 2 {
			t.Errorf("行員数: got %d, want 2", len(employees))
		}

		w = doJSON(t, s, http.MethodGet, "/employees/count", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("ステータスコード: got %d, want %d", w.Code, http.StatusOK)
		}
		// ダッシュボード集計はボディを数値としてパースするため、件数は裸の数値で返す
		if got := strings.TrimSpace(w.Body.String()); got != "2" {
			t.Errorf("件数レスポンス: got %q, want %q", got, "2")
		}
	})
}

func TestHandleUpdate(t *testing.T) {
	t.Parallel()

	t.Run("行員情報を更新できる", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		seedEmployee(t, s, "1000140", "Jack", "Olsen", "secret123", "EMPLOYEE")

		w := doJSON(t, s, http.MethodPut, "/employees/1000140", map[string]any{
			"firstName": "Jackson",
			"lastName":  "Olsen",
			"email":     "jackson@bank.example.com",
			"role":      "MANAGER",
		})

		if w.Code != http.StatusOK {
			t.Fatalf("ステータスコード: got %d, want %d", w.Code, http.StatusOK)
		}

		var got employeeResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("レスポンスのデコードに失敗: %v", err)
		}
		if got.FirstName != "Jackson" {
			t.Errorf("firstName: got %s, want Jackson", got.FirstName)
		}
		if got.Role != "MANAGER" {
			t.Errorf("role: got %s, want MANAGER", got.Role)
		}
	})

	t.Run("存在しない行員の更新は404を返す", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		w := doJSON(t, s, http.MethodPut, "/employees/9999999", map[string]any{
			"firstName": "Nobody",
			"email":     "nobody@bank.example.com",
		})

		if w.Code != http.StatusNotFound {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}

func TestHandleDelete(t *testing.T) {
	t.Parallel()

	t.Run("行員を削除できる", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		seedEmployee(t, s, "1000150", "Liam", "Ford", "secret123", "EMPLOYEE")

		w := doJSON(t, s, http.MethodDelete, "/employees/1000150", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("ステータスコード: got %d, want %d", w.Code, http.StatusOK)
		}

		w = doJSON(t, s, http.MethodGet, "/employees/1000150", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("削除後の取得: got %d, want %d", w.Code, http.StatusNotFound)
		}
	})

	t.Run("存在しない行員の削除は404を返す", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		w := doJSON(t, s, http.MethodDelete, "/employees/9999999", nil)

		if w.Code != http.StatusNotFound {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}

func TestSeedEmployees(t *testing.T) {
	t.Parallel()

	t.Run("空のテーブルにサンプル行員が投入される", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		if err := s.seedEmployees(); err != nil {
			t.Fatalf("サンプルデータ投入に失敗: %v", err)
		}

		count, err := s.queries.CountEmployees(context.Background())
		if err != nil {
			t.Fatalf("件数取得に失敗: %v", err)
		}
		if count != 3 {
			t.Errorf("サンプル行員数: got %d, want 3", count)
		}
	})

	t.Run("既存データがある場合は投入しない", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		seedEmployee(t, s, "1000160", "Noah", "Reed", "secret123", "EMPLOYEE")

		if err := s.seedEmployees(); err != nil {
			t.Fatalf("サンプルデータ投入に失敗: %v", err)
		}

		count, err := s.queries.CountEmployees(context.Background())
		if err != nil {
			t.Fatalf("件数取得に失敗: %v", err)
		}
		if count != 1 {
			t.Errorf("行員数: got %d, want 1", count)
		}
	})
}
