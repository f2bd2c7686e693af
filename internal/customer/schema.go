package customer

import (
	"database/sql"
	"fmt"
)

// スキーマ定義。db/customer/schema.sql と同期すること。
const schema = `
CREATE TABLE IF NOT EXISTS customers (
    -- 内部の一意識別子
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    -- 顧客のSSN ID（7桁、外部向けの識別子）
    ssn_id TEXT NOT NULL UNIQUE,
    -- 名
    first_name TEXT NOT NULL,
    -- 姓
    last_name TEXT NOT NULL DEFAULT '',
    -- メールアドレス
    email TEXT NOT NULL DEFAULT '',
    -- 住所
    address TEXT NOT NULL DEFAULT '',
    -- 連絡先電話番号
    contact_number TEXT NOT NULL DEFAULT '',
    -- Aadhar番号
    aadhar_number TEXT NOT NULL DEFAULT '',
    -- PAN番号
    pan_number TEXT NOT NULL DEFAULT '',
    -- 口座番号
    account_number TEXT NOT NULL DEFAULT '',
    -- 生年月日（YYYY-MM-DD）
    date_of_birth TEXT NOT NULL DEFAULT '',
    -- 性別（MALE/FEMALE/OTHER）
    gender TEXT NOT NULL DEFAULT '',
    -- 婚姻状況（SINGLE/MARRIED/DIVORCED/WIDOWED）
    marital_status TEXT NOT NULL DEFAULT '',
    -- bcryptでハッシュ化したパスワード
    password_hash TEXT NOT NULL,
    -- ロール（CUSTOMER固定）
    role TEXT NOT NULL DEFAULT 'CUSTOMER',
    -- 有効フラグ（0で無効化された口座）
    is_active INTEGER NOT NULL DEFAULT 1
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_customers_ssn_id
    ON customers(ssn_id);
`

// initSchema はSQLiteデータベースにスキーマを適用する。
func initSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("スキーマの適用に失敗: %w", err)
	}
	return nil
}
