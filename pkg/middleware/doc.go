// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// ベアラートークンからの認証サブジェクト抽出、パニックリカバリ、
// CORS設定など、gatewayサービスを中心に共通して使用するミドルウェアを含む。
package middleware
