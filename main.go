// @title OMR考试评分后端 API
// @version 1.0
// @description 多选题考试的章节管理、自动评分与成绩统计服务。
// @termsOfService http://swagger.io/terms/

// @contact.name API支持
// @contact.email support@example.com

// @license.name MIT

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"omr_exam_backend/internal/app"
	"omr_exam_backend/internal/config"
	"omr_exam_backend/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库建表，完成后退出")
	flag.Parse()

	// .env 可选，用于本地覆盖数据库等敏感配置
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 建表完成后直接退出
	if *migrateOnly {
		log.Println("数据库建表完成，退出程序")
		return
	}

	application.Run()
}
