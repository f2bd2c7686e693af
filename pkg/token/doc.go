// Package token は認証用のベアラートークンの発行と検証を提供する。
//
// トークンはHMAC-SHA256で署名されたJWTであり、サブジェクト（顧客のSSN ID
// または行員ID）と有効期限を含む。customer/employeeサービスがログイン成功時に
// 発行し、gatewayサービスが受信リクエストの検証に使用する。
package token
