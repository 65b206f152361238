// 导入演示数据脚本
//
// 创建两个示例章节并提交若干答题记录，便于本地联调前端或查看统计接口效果。
// 数据库中已存在章节时不会重复导入。
//
// 用法: go run scripts/seed_demo.go

package main

import (
	"log"
	"os"

	"omr_exam_backend/internal/config"
	"omr_exam_backend/internal/repository"
	"omr_exam_backend/internal/service"
	"omr_exam_backend/pkg/database"
	"omr_exam_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	chapterRepo := repository.NewChapterRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)

	count, err := chapterRepo.Count()
	if err != nil {
		log.Fatalf("查询章节数量失败: %v", err)
	}
	if count > 0 {
		log.Println("数据库已有章节，跳过示例数据导入")
		return
	}

	chapters := service.NewChapterService(chapterRepo, nil, nil)
	attempts := service.NewAttemptService(attemptRepo, chapterRepo, nil)

	type submission struct {
		chapter string
		student string
		answers []string
		seconds int
	}

	chapterDefs := []service.CreateChapterRequest{
		{
			Name:          "Math-1",
			QuestionCount: 5,
			OptionCount:   4,
			AnswerKey:     []string{"A", "B", "C", "D", "A"},
		},
		{
			Name:          "Physics-1",
			QuestionCount: 8,
			OptionCount:   4,
			AnswerKey:     []string{"B", "C", "A", "D", "B", "A", "C", "D"},
		},
	}

	submissions := []submission{
		{"Math-1", "Alice", []string{"A", "B", "C", "D", "B"}, 412},
		{"Math-1", "Alice", []string{"A", "B", "C", "D", "A"}, 388},
		{"Math-1", "Bob", []string{"A", "A", "A", "A", "A"}, 295},
		{"Physics-1", "Alice", []string{"B", "C", "A", "D", "B", "A", "C", "A"}, 611},
		{"Physics-1", "Carol", []string{"B", "C", "A", "D", "B", "A", "C", "D"}, 540},
		{"Physics-1", "Bob", []string{"B", "A", "", "", "B", "A", "", ""}, 702},
	}

	chapterIDs := make(map[string]uint, len(chapterDefs))
	for _, def := range chapterDefs {
		ch, err := chapters.CreateChapter(def)
		if err != nil {
			log.Fatalf("创建章节 %s 失败: %v", def.Name, err)
		}
		chapterIDs[ch.Name] = ch.ID
		log.Printf("已创建章节 %s（%d 题，%d 选项）", ch.Name, ch.QuestionCount, ch.OptionCount)
	}

	for _, sub := range submissions {
		resp, err := attempts.SubmitAttempt(service.SubmitExamRequest{
			ChapterID:        chapterIDs[sub.chapter],
			StudentName:      sub.student,
			SubmittedAnswers: sub.answers,
			TimeTaken:        sub.seconds,
		})
		if err != nil {
			log.Fatalf("提交 %s 的答题失败: %v", sub.student, err)
		}
		log.Printf("%s 在 %s 第 %d 次提交：%d/%d（%s）",
			sub.student, sub.chapter, resp.AttemptNumber, resp.Score, resp.Total, resp.Grade)
	}

	log.Println("示例数据导入完成")
}
