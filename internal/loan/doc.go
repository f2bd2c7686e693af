// Package loan はローン申請サービスを提供する。
// ローンの申請・照会・更新・削除を担当する。申請時には
// 顧客サービスへ問い合わせて申請者の実在を確認する。
package loan
