package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key"

// TestIssueAndValidate はトークンの発行と検証の往復を検証する。
func TestIssueAndValidate(t *testing.T) {
	t.Parallel()

	t.Run("発行直後のトークンは検証に成功しサブジェクトが取得できる", func(t *testing.T) {
		t.Parallel()

		for _, subject := range []string{"1001001", "1000001", "service-loan"} {
			signed, err := Issue(testSecret, subject)
			if err != nil {
				t.Fatalf("トークン発行に失敗: %v", err)
			}

			got, err := Validate(testSecret, signed)
			if err != nil {
				t.Fatalf("トークン検証に失敗: %v", err)
			}
			if got != subject {
				t.Errorf("サブジェクト: got %q, want %q", got, subject)
			}
		}
	})

	t.Run("異なる鍵で署名されたトークンは検証に失敗する", func(t *testing.T) {
		t.Parallel()

		signed, err := Issue("another-secret-key", "1001001")
		if err != nil {
			t.Fatalf("トークン発行に失敗: %v", err)
		}

		if _, err := Validate(testSecret, signed); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("エラー: got %v, want %v", err, ErrInvalidToken)
		}
	})

	t.Run("不正な形式のトークンは検証に失敗する", func(t *testing.T) {
		t.Parallel()

		for _, tok := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
			if _, err := Validate(testSecret, tok); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("token=%q: got %v, want %v", tok, err, ErrInvalidToken)
			}
		}
	})
}

// TestValidateExpired は有効期限切れトークンの検証失敗を検証する。
func TestValidateExpired(t *testing.T) {
	t.Parallel()

	// Issueを経由せず、有効期限が過去のトークンを直接作る
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "1001001",
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now.Add(-TTL - time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("期限切れトークンの作成に失敗: %v", err)
	}

	if _, err := Validate(testSecret, signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("エラー: got %v, want %v", err, ErrInvalidToken)
	}
}
