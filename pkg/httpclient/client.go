package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// requestTimeout はバックエンドへの1リクエストあたりのタイムアウト。
// 応答しないサービスを待ち続けないための上限で、超過は通信エラーとして扱う。
const requestTimeout = 10 * time.Second

// Client はサービス間通信用のHTTPクライアント。
type Client struct {
	// httpClient は内部で使用するHTTPクライアント。
	httpClient *http.Client
	// baseURL は接続先サービスのベースURL。
	baseURL string
}

// New は新しいサービス間通信用HTTPクライアントを生成する。
// baseURLには接続先サービスのベースURL（例: "http://customer:8081"）を指定する。
func New(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL: baseURL,
	}
}

// GetJSON は指定パスにGETリクエストを送信し、レスポンスボディをresultに
// デシリアライズする。2xx以外のステータスはエラーとして返す。
// コンテキストにベアラートークンが設定されていればAuthorizationヘッダーで伝播する。
func (c *Client) GetJSON(ctx context.Context, path string, result any) error {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("HTTPリクエストの作成に失敗: %w", err)
	}

	if tok, ok := ctx.Value(contextKeyToken).(string); ok && tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTPリクエストの送信に失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTPエラー: status=%d, body=%s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("レスポンスボディのデシリアライズに失敗: %w", err)
		}
	}
	return nil
}

// contextKey はコンテキストキーの型。
type contextKey string

// contextKeyToken はコンテキストにベアラートークンを格納するためのキー。
const contextKeyToken contextKey = "bearer_token"

// WithToken はコンテキストにベアラートークンを設定する。
// サービス間通信時に呼び出し元の認証情報を伝播するために使用する。
func WithToken(ctx context.Context, tok string) context.Context {
	return context.WithValue(ctx, contextKeyToken, tok)
}
