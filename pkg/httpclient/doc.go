// Package httpclient はサービス間のHTTP通信を行うクライアントを提供する。
//
// loan/transactionサービスからcustomerサービスへの顧客存在確認、
// gatewayのダッシュボード集計など、サービス間の通信パターンを統一する。
package httpclient
