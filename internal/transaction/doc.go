// Package transaction は入出金取引サービスを提供する。
// 取引の記録・照会・更新・削除と、銀行全体の残高集計を担当する。
// 取引記録時には顧客サービスへ問い合わせて顧客の実在を確認する。
package transaction
