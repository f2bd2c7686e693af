package transaction

import "database/sql"

// schema はスキーマ定義。db/transaction/schema.sql と同期すること。
const schema = `
-- transactions は入出金取引を保持するテーブル。
CREATE TABLE IF NOT EXISTS transactions (
    id                  INTEGER PRIMARY KEY AUTOINCREMENT,
    -- transaction_id は取引ID（UUID）
    transaction_id      TEXT NOT NULL UNIQUE,
    -- ssn_id は取引対象顧客のSSN ID
    ssn_id              TEXT NOT NULL,
    -- account_id は取引対象の口座ID
    account_id          TEXT NOT NULL DEFAULT '',
    -- transaction_type は取引種別（CREDIT / DEBIT）
    transaction_type    TEXT NOT NULL,
    -- mode_of_transaction は取引手段（DEPOSIT / WITHDRAWAL / TRANSFER など）
    mode_of_transaction TEXT NOT NULL DEFAULT '',
    -- amount は取引金額
    amount              REAL NOT NULL,
    -- transaction_date は取引日時（RFC3339）
    transaction_date    TEXT NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_transaction_id ON transactions (transaction_id);
CREATE INDEX IF NOT EXISTS idx_transactions_ssn_id ON transactions (ssn_id);
`

// initSchema はデータベースにスキーマを適用する。
func initSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
