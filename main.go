package main

import (
	"log"

	"github.com/stsysd/senritsu/api"
	"github.com/stsysd/senritsu/config"
	"github.com/stsysd/senritsu/db"
	"github.com/stsysd/senritsu/store"
)

func main() {
	// 設定の読み込み
	cfg := config.NewConfig()

	// ストアの初期化
	s, err := store.NewSQLiteStore(cfg.DataDir, db.Migrate)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer s.Close()

	// サーバーの起動
	server := api.NewServer(s, cfg)
	log.Fatal(server.Run(":" + cfg.Port))
}
