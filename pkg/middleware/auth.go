package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/bank/pkg/token"
)

// contextKeySubject はGinコンテキストに認証サブジェクトを格納するキー。
const contextKeySubject = "auth_subject"

// Auth は受信リクエストからベアラートークンを取り出して検証するGinミドルウェアを返す。
// publicPathsに完全一致するパス（ヘルスチェック、登録、ログイン）は検証せず通す。
//
// このミドルウェアはリクエストを遮断しない。トークンが無い場合も検証に失敗した
// 場合も認証情報なしで後段に処理を進め、アクセス制御の強制は転送先の
// バックエンドサービスに委ねる。検証に成功した場合のみ、トークンのサブジェクトを
// リクエストのコンテキストに設定する。
func Auth(secret string, publicPaths []string) gin.HandlerFunc {
	public := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := public[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			c.Next()
			return
		}

		subject, err := token.Validate(secret, tokenString)
		if err != nil {
			// 無効なトークンは認証情報なしとして扱う
			c.Next()
			return
		}

		c.Set(contextKeySubject, subject)
		c.Next()
	}
}

// GetSubject はGinコンテキストから認証済みサブジェクトを取得する。
// Authミドルウェアが事前に適用され、検証に成功している必要がある。
// 未認証のリクエストでは空文字列を返す。
func GetSubject(c *gin.Context) string {
	v, _ := c.Get(contextKeySubject)
	if subject, ok := v.(string); ok {
		return subject
	}
	return ""
}
