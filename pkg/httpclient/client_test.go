package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestGetJSON はサービス間GETリクエストの挙動を検証する。
func TestGetJSON(t *testing.T) {
	t.Parallel()

	t.Run("JSONレスポンスをデシリアライズできること", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/customers/1001001" {
				t.Errorf("パス = %q, want %q", r.URL.Path, "/customers/1001001")
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"ssnId":"1001001","firstName":"John"}`))
		}))
		t.Cleanup(server.Close)

		var result struct {
			SsnID     string `json:"ssnId"`
			FirstName string `json:"firstName"`
		}
		client := New(server.URL)
		if err := client.GetJSON(context.Background(), "/customers/1001001", &result); err != nil {
			t.Fatalf("GetJSONに失敗: %v", err)
		}
		if result.SsnID != "1001001" {
			t.Errorf("ssnId = %q, want %q", result.SsnID, "1001001")
		}
	})

	t.Run("数値のみのボディもデシリアライズできること", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`42`))
		}))
		t.Cleanup(server.Close)

		var count int64
		client := New(server.URL)
		if err := client.GetJSON(context.Background(), "/customers/count", &count); err != nil {
			t.Fatalf("GetJSONに失敗: %v", err)
		}
		if count != 42 {
			t.Errorf("count = %d, want 42", count)
		}
	})

	t.Run("2xx以外のステータスはエラーになること", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"not found"}`))
		}))
		t.Cleanup(server.Close)

		client := New(server.URL)
		if err := client.GetJSON(context.Background(), "/customers/9999999", nil); err == nil {
			t.Error("404に対してエラーが返らなかった")
		}
	})

	t.Run("コンテキストのトークンがAuthorizationヘッダーで伝播されること", func(t *testing.T) {
		t.Parallel()

		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{}`))
		}))
		t.Cleanup(server.Close)

		client := New(server.URL)
		ctx := WithToken(context.Background(), "service-token")
		if err := client.GetJSON(ctx, "/customers/1001001", nil); err != nil {
			t.Fatalf("GetJSONに失敗: %v", err)
		}
		if gotAuth != "Bearer service-token" {
			t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer service-token")
		}
	})

	t.Run("接続できないサービスへのリクエストはエラーになること", func(t *testing.T) {
		t.Parallel()

		client := New("http://127.0.0.1:1")
		if err := client.GetJSON(context.Background(), "/customers/count", nil); err == nil {
			t.Error("接続失敗に対してエラーが返らなかった")
		}
	})
}
