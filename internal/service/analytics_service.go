package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"omr_exam_backend/internal/model"
	"omr_exam_backend/internal/repository"
	"omr_exam_backend/internal/util"
	"omr_exam_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	analyticsOverallKey     = "omr:analytics:overall"
	analyticsChaptersKey    = "omr:analytics:chapters"
	analyticsTopKey         = "omr:analytics:top"
	analyticsLeaderboardKey = "omr:analytics:leaderboard"
)

type AnalyticsService struct {
	Repo        *repository.AnalyticsRepository
	ChapterRepo *repository.ChapterRepository
	Redis       *redis.Client
	CacheTTL    time.Duration
	TopLimit    int
}

func NewAnalyticsService(repo *repository.AnalyticsRepository, chapterRepo *repository.ChapterRepository, rdb *redis.Client, cacheTTL time.Duration, topLimit int) *AnalyticsService {
	return &AnalyticsService{
		Repo:        repo,
		ChapterRepo: chapterRepo,
		Redis:       rdb,
		CacheTTL:    cacheTTL,
		TopLimit:    topLimit,
	}
}

// OverviewResponse 仪表盘一次拉取的聚合载荷
type OverviewResponse struct {
	Overall       *model.OverallStatistics  `json:"overall"`
	ChapterStats  []model.ChapterStatistics `json:"chapterStats"`
	TopPerformers []model.TopPerformer      `json:"topPerformers"`
	Attempts      []model.AttemptDetail     `json:"attempts"`
}

// OverallStatistics 全局统计，student 非空时退化为该学生的视角。
// 仅全局视角走缓存，按学生过滤的查询直接读库。
func (s *AnalyticsService) OverallStatistics(student string) (*model.OverallStatistics, error) {
	if student == "" {
		var cached model.OverallStatistics
		if s.cacheGet(analyticsOverallKey, &cached) {
			return &cached, nil
		}
	}

	stats, err := s.Repo.OverallStatistics(student)
	if err != nil {
		return nil, err
	}
	if student == "" {
		s.cacheSet(analyticsOverallKey, stats)
	}
	return stats, nil
}

func (s *AnalyticsService) ChapterStatistics() ([]model.ChapterStatistics, error) {
	var cached []model.ChapterStatistics
	if s.cacheGet(analyticsChaptersKey, &cached) {
		return cached, nil
	}

	stats, err := s.Repo.ChapterStatistics()
	if err != nil {
		return nil, err
	}
	s.cacheSet(analyticsChaptersKey, stats)
	return stats, nil
}

// TopPerformers 按单次最佳成绩排名，limit<=0 时取配置默认值
func (s *AnalyticsService) TopPerformers(limit int) ([]model.TopPerformer, error) {
	if limit <= 0 {
		limit = s.TopLimit
	}

	if limit == s.TopLimit {
		var cached []model.TopPerformer
		if s.cacheGet(analyticsTopKey, &cached) {
			return cached, nil
		}
	}

	performers, err := s.Repo.TopPerformers(limit)
	if err != nil {
		return nil, err
	}
	for i := range performers {
		performers[i].Rank = i + 1
	}

	if limit == s.TopLimit {
		s.cacheSet(analyticsTopKey, performers)
	}
	return performers, nil
}

// StudentLeaderboard 按学生累计得分率排名（总得分/总题数，跨章节合并）
func (s *AnalyticsService) StudentLeaderboard(limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = s.TopLimit
	}

	if limit == s.TopLimit {
		var cached []model.LeaderboardEntry
		if s.cacheGet(analyticsLeaderboardKey, &cached) {
			return cached, nil
		}
	}

	entries, err := s.Repo.StudentLeaderboard(limit)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}

	if limit == s.TopLimit {
		s.cacheSet(analyticsLeaderboardKey, entries)
	}
	return entries, nil
}

func (s *AnalyticsService) ChapterSummary(chapterID uint) (*model.ChapterSummary, error) {
	if _, err := s.ChapterRepo.FindByID(chapterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChapterNotFound
		}
		return nil, err
	}
	return s.Repo.ChapterSummary(chapterID)
}

// Overview 组合全局统计、章节统计、排行榜与明细，student 非空时按学生过滤
func (s *AnalyticsService) Overview(student string) (*OverviewResponse, error) {
	overall, err := s.OverallStatistics(student)
	if err != nil {
		return nil, err
	}
	chapterStats, err := s.ChapterStatistics()
	if err != nil {
		return nil, err
	}
	top, err := s.TopPerformers(0)
	if err != nil {
		return nil, err
	}
	attempts, err := s.Repo.AttemptDetails(student)
	if err != nil {
		return nil, err
	}

	return &OverviewResponse{
		Overall:       overall,
		ChapterStats:  chapterStats,
		TopPerformers: top,
		Attempts:      attempts,
	}, nil
}

// InvalidateCache 在章节或答题数据变更后丢弃缓存的聚合结果
func (s *AnalyticsService) InvalidateCache() {
	if s.Redis == nil {
		return
	}
	ctx := context.Background()
	if err := s.Redis.Del(ctx, analyticsOverallKey, analyticsChaptersKey, analyticsTopKey, analyticsLeaderboardKey).Err(); err != nil {
		logger.Log.Warn("清除统计缓存失败", zap.Error(err))
	}
}

// WarmCache 预计算各聚合视图，由后台定时任务调用
func (s *AnalyticsService) WarmCache() {
	if s.Redis == nil {
		return
	}
	if _, err := s.OverallStatistics(""); err != nil {
		logger.Log.Warn("预热全局统计失败", zap.Error(err))
	}
	if _, err := s.ChapterStatistics(); err != nil {
		logger.Log.Warn("预热章节统计失败", zap.Error(err))
	}
	if _, err := s.TopPerformers(0); err != nil {
		logger.Log.Warn("预热最佳成绩榜失败", zap.Error(err))
	}
	if _, err := s.StudentLeaderboard(0); err != nil {
		logger.Log.Warn("预热学生排行榜失败", zap.Error(err))
	}
}

func (s *AnalyticsService) cacheGet(key string, dest interface{}) bool {
	if s.Redis == nil {
		return false
	}
	val, err := s.Redis.Get(context.Background(), key).Result()
	if err == redis.Nil {
		return false
	} else if err != nil {
		logger.Log.Warn("读取统计缓存失败", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		logger.Log.Warn("解析统计缓存失败", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *AnalyticsService) cacheSet(key string, value interface{}) {
	if s.Redis == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.Redis.Set(context.Background(), key, data, s.CacheTTL).Err(); err != nil {
		logger.Log.Warn("写入统计缓存失败", zap.String("key", key), zap.Error(err))
	}
}
