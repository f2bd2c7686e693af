// Package gateway はAPI Gatewayサービスの内部実装を提供する。
//
// 受信パスのプレフィックスに基づくバックエンドサービスへのリクエスト転送、
// ベアラートークンからの認証サブジェクト抽出、ダッシュボード集計を担当する。
// 外部からアクセス可能な唯一のサービスだが、認証の強制は行わない。
// 無効・欠落トークンのリクエストも転送され、保護は各バックエンドの責務となる。
package gateway
