package gateway

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/bank/pkg/httpclient"
	"github.com/nao1215/bank/pkg/middleware"
)

// proxyTimeout はバックエンドへの転送1回あたりのタイムアウト。
// 超過した転送は通信エラーとして500で応答する。
const proxyTimeout = 10 * time.Second

// publicPaths は認証ミドルウェアがトークン検証をスキップする公開パス。
// パスは完全一致で比較する。
var publicPaths = []string{
	"/health",
	"/api/customers/register",
	"/api/customers/login",
	"/api/employees/login",
}

// Server はAPI GatewayサービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// jwtSecret はトークン検証用の秘密鍵。
	jwtSecret string
	// routes はパスプレフィックスから転送先への順序付きルーティングテーブル。
	// 先頭から順に前方一致で評価し、最初に一致したエントリが勝つ。
	routes []route
	// proxyClient はリクエスト転送に使用するHTTPクライアント。
	proxyClient *http.Client
	// customerClient はダッシュボード集計用のcustomerサービスクライアント。
	customerClient *httpclient.Client
	// employeeClient はダッシュボード集計用のemployeeサービスクライアント。
	employeeClient *httpclient.Client
	// loanClient はダッシュボード集計用のloanサービスクライアント。
	loanClient *httpclient.Client
	// transactionClient はダッシュボード集計用のtransactionサービスクライアント。
	transactionClient *httpclient.Client
}

// route はルーティングテーブルの1エントリ。
type route struct {
	// prefix は受信パスと前方一致で比較するプレフィックス。
	prefix string
	// origin は転送先バックエンドのベースURL。
	origin string
}

// serviceURLConfig はバックエンドサービスのURL設定。
type serviceURLConfig struct {
	Customer    string
	Employee    string
	Transaction string
	Loan        string
}

// NewServer は新しいGatewayサーバーを生成する。
// バックエンドのURLとトークン検証用秘密鍵は環境変数から読み込む。
func NewServer(port string) *Server {
	jwtSecret := getEnvOr("JWT_SECRET", "dev-secret-key")

	urls := serviceURLConfig{
		Customer:    getEnvOr("CUSTOMER_SERVICE_URL", "http://localhost:8081"),
		Employee:    getEnvOr("EMPLOYEE_SERVICE_URL", "http://localhost:8082"),
		Transaction: getEnvOr("TRANSACTION_SERVICE_URL", "http://localhost:8083"),
		Loan:        getEnvOr("LOAN_SERVICE_URL", "http://localhost:8084"),
	}

	frontendURL := getEnvOr("FRONTEND_URL", "http://localhost:4200")

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS([]string{frontendURL}))
	router.Use(middleware.Auth(jwtSecret, publicPaths))

	s := &Server{
		router:            router,
		port:              port,
		jwtSecret:         jwtSecret,
		routes:            routingTable(urls),
		proxyClient:       &http.Client{Timeout: proxyTimeout},
		customerClient:    httpclient.New(urls.Customer),
		employeeClient:    httpclient.New(urls.Employee),
		loanClient:        httpclient.New(urls.Loan),
		transactionClient: httpclient.New(urls.Transaction),
	}
	s.setupRoutes()

	return s
}

// routingTable はバックエンドURL設定からルーティングテーブルを構築する。
// ダッシュボードは専用のバックエンドを持たず、customerサービスを再利用する。
func routingTable(urls serviceURLConfig) []route {
	return []route{
		{prefix: "/api/customers", origin: urls.Customer},
		{prefix: "/api/employees", origin: urls.Employee},
		{prefix: "/api/transactions", origin: urls.Transaction},
		{prefix: "/api/loans", origin: urls.Loan},
		{prefix: "/api/dashboard", origin: urls.Customer},
	}
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
// /api配下はすべて単一のキャッチオールで受け、転送処理の中で行き先を決める。
func (s *Server) setupRoutes() {
	s.router.Any("/api/*path", s.handleForward())

	// ヘルスチェック。転送せずgateway自身が応答する。
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "running", "service": "gateway"})
	})
}

// handleForward は/api配下のリクエストを処理するハンドラを返す。
// ダッシュボード集計のみgateway自身が処理し、それ以外はルーティングテーブルに
// 従ってバックエンドサービスへ転送する。
func (s *Server) handleForward() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		// 集計エンドポイントはキャッチオールより優先する
		if path == "/api/dashboard/summary" && c.Request.Method == http.MethodGet {
			s.handleDashboardSummary(c)
			return
		}

		origin, ok := s.resolveOrigin(path)
		if !ok {
			log.Printf("ルーティング先が見つかりません: %s", path)
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}

		s.forward(c, origin, path)
	}
}

// resolveOrigin は受信パスに一致する転送先のベースURLを返す。
// テーブルを先頭から順に前方一致で評価し、最初に一致したエントリを採用する。
// 一致するエントリが無い場合はfalseを返す。
func (s *Server) resolveOrigin(path string) (string, bool) {
	for _, r := range s.routes {
		if strings.HasPrefix(path, r.prefix) {
			return r.origin, true
		}
	}
	return "", false
}

// forward はリクエストをバックエンドサービスに転送し、応答をそのまま中継する。
//
// パスは先頭の/apiを取り除いて転送先URLと連結する
// （例: /api/customers/42 -> {customerOrigin}/customers/42）。
// ヘッダーはHostを除いてすべて転送し、ボディがある場合は
// Content-Typeをapplication/jsonに正規化する。
// バックエンドの4xx/5xxはgatewayのエラーではないため加工せず中継し、
// 通信レベルの失敗のみ500として応答する。
func (s *Server) forward(c *gin.Context, origin, path string) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "リクエストボディの読み取りに失敗しました"})
		return
	}

	target := origin + path[len("/api"):]
	if q := c.Request.URL.RawQuery; q != "" {
		target += "?" + q
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, target, bytes.NewReader(body))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "転送リクエストの作成に失敗しました"})
		return
	}

	// Host以外のヘッダーをすべて転送する。Authorizationも加工せずそのまま渡し、
	// バックエンドには呼び出し元のトークンが見える。
	for name, values := range c.Request.Header {
		if strings.EqualFold(name, "Host") {
			continue
		}
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.proxyClient.Do(req)
	if err != nil {
		log.Printf("転送エラー: url=%s, error=%v", target, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Gateway error: %v", err)})
		return
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("転送応答の読み取りエラー: url=%s, error=%v", target, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Gateway error: %v", err)})
		return
	}

	// ステータスとボディはバックエンドのものをそのまま返す
	c.Data(resp.StatusCode, "application/json", respBody)
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
