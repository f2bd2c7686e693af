// 顧客サービスのエントリポイント。
// 顧客の登録・ログイン・CRUD操作と口座の有効化管理を担当する。
package main

import (
	"log"
	"os"

	"github.com/nao1215/bank/internal/customer"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	server, err := customer.NewServer(port)
	if err != nil {
		log.Fatalf("顧客サーバーの初期化に失敗: %v", err)
	}

	log.Printf("顧客サービスを起動します: :%s", port)
	if err := server.Run(); err != nil {
		log.Fatalf("顧客サービスの起動に失敗: %v", err)
	}
}
