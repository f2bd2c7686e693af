// ローンサービスのエントリポイント。
// ローン申請の受付・照会・更新を担当する。
package main

import (
	"log"
	"os"

	"github.com/nao1215/bank/internal/loan"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8084"
	}

	server, err := loan.NewServer(port)
	if err != nil {
		log.Fatalf("ローンサーバーの初期化に失敗: %v", err)
	}

	log.Printf("ローンサービスを起動します: :%s", port)
	if err := server.Run(); err != nil {
		log.Fatalf("ローンサービスの起動に失敗: %v", err)
	}
}
