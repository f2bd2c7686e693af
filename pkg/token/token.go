package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTL はトークンの有効期間。発行から7日間有効で、失効以外の無効化手段はない
// （サーバー側のブラックリストは持たない）。
const TTL = 7 * 24 * time.Hour

// issuer はトークンのiss（発行者）クレームに設定する値。
const issuer = "bank-gateway"

// ErrInvalidToken は署名不一致・構造不正・期限切れのいずれかを表す。
// 呼び出し元は原因を区別する必要がないため、単一のエラーに集約する。
var ErrInvalidToken = errors.New("トークンが無効です")

// Issue はサブジェクトを埋め込んだ署名付きトークンを発行する。
// サブジェクト・発行時刻・有効期限をクレームとして含み、HMAC-SHA256で署名する。
func Issue(secret, subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("トークンの署名に失敗: %w", err)
	}
	return signed, nil
}

// Validate はトークンを検証し、埋め込まれたサブジェクトを返す。
// 署名が一致しない場合、構造が不正な場合、有効期限が過ぎている場合は
// ErrInvalidTokenを返す。
func Validate(secret, tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
