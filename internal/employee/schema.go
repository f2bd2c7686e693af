package employee

import "database/sql"

// schema はスキーマ定義。db/employee/schema.sql と同期すること。
const schema = `
-- employees は銀行の行員情報を保持するテーブル。
CREATE TABLE IF NOT EXISTS employees (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    -- employee_id は行員ID（7桁のゼロ埋め数字）
    employee_id    TEXT NOT NULL UNIQUE,
    -- first_name は名
    first_name     TEXT NOT NULL,
    -- last_name は姓
    last_name      TEXT NOT NULL DEFAULT '',
    -- email はメールアドレス（一意）
    email          TEXT NOT NULL UNIQUE,
    -- contact_number は連絡先電話番号
    contact_number TEXT NOT NULL DEFAULT '',
    -- address は住所
    address        TEXT NOT NULL DEFAULT '',
    -- date_of_birth は生年月日（YYYY-MM-DD）
    date_of_birth  TEXT NOT NULL DEFAULT '',
    -- gender は性別
    gender         TEXT NOT NULL DEFAULT '',
    -- password_hash はbcryptでハッシュ化したパスワード
    password_hash  TEXT NOT NULL,
    -- role は行員の役割（EMPLOYEE / MANAGER）
    role           TEXT NOT NULL DEFAULT 'EMPLOYEE'
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_employees_employee_id ON employees (employee_id);
CREATE UNIQUE INDEX IF NOT EXISTS idx_employees_email ON employees (email);
`

// initSchema はデータベースにスキーマを適用する。
func initSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
