package loan

import "database/sql"

// schema はスキーマ定義。db/loan/schema.sql と同期すること。
const schema = `
-- loans はローン申請情報を保持するテーブル。
CREATE TABLE IF NOT EXISTS loans (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    -- loan_id はローンID（LOAN-XXXXXXXX形式）
    loan_id          TEXT NOT NULL UNIQUE,
    -- ssn_id は申請者（顧客）のSSN ID
    ssn_id           TEXT NOT NULL,
    -- loan_type はローン種別（HOME / PERSONAL / VEHICLE / EDUCATION）
    loan_type        TEXT NOT NULL DEFAULT 'PERSONAL',
    -- loan_amount は申請金額
    loan_amount      REAL NOT NULL,
    -- duration_months は返済期間（月数）
    duration_months  INTEGER NOT NULL,
    -- occupation は申請者の職業
    occupation       TEXT NOT NULL DEFAULT '',
    -- employer_name は勤務先名
    employer_name    TEXT NOT NULL DEFAULT '',
    -- employer_address は勤務先住所
    employer_address TEXT NOT NULL DEFAULT '',
    -- email は申請時の連絡用メールアドレス
    email            TEXT NOT NULL DEFAULT '',
    -- address は申請者の住所
    address          TEXT NOT NULL DEFAULT '',
    -- marital_status は婚姻状況
    marital_status   TEXT NOT NULL DEFAULT '',
    -- contact_number は連絡先電話番号
    contact_number   TEXT NOT NULL DEFAULT '',
    -- status は申請状態（PENDING / APPROVED / REJECTED）
    status           TEXT NOT NULL DEFAULT 'PENDING'
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_loans_loan_id ON loans (loan_id);
CREATE INDEX IF NOT EXISTS idx_loans_ssn_id ON loans (ssn_id);
`

// initSchema はデータベースにスキーマを適用する。
func initSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
