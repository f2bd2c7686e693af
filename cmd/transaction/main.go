// 取引サービスのエントリポイント。
// 入出金取引の記録・照会と銀行全体の残高集計を担当する。
package main

import (
	"log"
	"os"

	"github.com/nao1215/bank/internal/transaction"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	server, err := transaction.NewServer(port)
	if err != nil {
		log.Fatalf("取引サーバーの初期化に失敗: %v", err)
	}

	log.Printf("取引サービスを起動します: :%s", port)
	if err := server.Run(); err != nil {
		log.Fatalf("取引サービスの起動に失敗: %v", err)
	}
}
