// Package employee は行員管理サービスを提供する。
// 行員の登録・ログイン・CRUD操作を担当し、マネージャーが
// 行員を管理するための管理系APIを公開する。
package employee
