// 行員サービスのエントリポイント。
// 行員の登録・ログイン・CRUD操作を担当する。
package main

import (
	"log"
	"os"

	"github.com/nao1215/bank/internal/employee"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8082"
	}

	server, err := employee.NewServer(port)
	if err != nil {
		log.Fatalf("行員サーバーの初期化に失敗: %v", err)
	}

	log.Printf("行員サービスを起動します: :%s", port)
	if err := server.Run(); err != nil {
		log.Fatalf("行員サービスの起動に失敗: %v", err)
	}
}
