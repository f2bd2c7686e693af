// Package customer は顧客サービスの内部実装を提供する。
//
// 顧客の登録・ログイン・CRUD・口座の有効化/無効化を担当する。
// ログイン成功時にはSSN IDをサブジェクトとするベアラートークンを発行する。
// 他サービス（loan/transaction）からの顧客存在確認にも応答する。
package customer
