package service

import (
	"context"
	"edupiyasa_backend/internal/model"
	"edupiyasa_backend/internal/repository"
	"edupiyasa_backend/internal/util"
	"edupiyasa_backend/pkg/logger"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	subjectCacheKey = "catalog:subjects"
	subjectCacheTTL = 5 * time.Minute
)

type SubjectService struct {
	SubjectRepo *repository.SubjectRepository
	LessonRepo  *repository.LessonRepository
	Redis       *redis.Client
}

func NewSubjectService(subjectRepo *repository.SubjectRepository, lessonRepo *repository.LessonRepository, rdb *redis.Client) *SubjectService {
	return &SubjectService{
		SubjectRepo: subjectRepo,
		LessonRepo:  lessonRepo,
		Redis:       rdb,
	}
}

// ListSubjects serves the catalog from redis when possible; a cache miss or a
// redis outage falls through to the database.
func (s *SubjectService) ListSubjects(ctx context.Context) ([]model.Subject, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, subjectCacheKey).Result()
		if err == nil {
			var subjects []model.Subject
			if err := json.Unmarshal([]byte(cached), &subjects); err == nil {
				return subjects, nil
			}
		}
	}

	subjects, err := s.SubjectRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(subjects); err == nil {
			if err := s.Redis.Set(ctx, subjectCacheKey, payload, subjectCacheTTL).Err(); err != nil {
				logger.Log.Warn("subject cache write failed", zap.Error(err))
			}
		}
	}

	return subjects, nil
}

// InvalidateCatalog drops the cached subject list after an admin write.
func (s *SubjectService) InvalidateCatalog(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, subjectCacheKey).Err(); err != nil {
		logger.Log.Warn("subject cache invalidation failed", zap.Error(err))
	}
}

// SubjectDetail is a subject with its ordered lessons and, for the requesting
// student, which of them are completed.
type SubjectDetail struct {
	Subject   model.Subject  `json:"subject"`
	Lessons   []model.Lesson `json:"lessons"`
	Completed map[uint]bool  `json:"completed"`
}

func (s *SubjectService) GetSubjectDetail(subjectID, userID uint) (*SubjectDetail, error) {
	subject, err := s.SubjectRepo.FindByID(subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubjectNotFound
		}
		return nil, err
	}

	lessons, err := s.LessonRepo.FindBySubject(subjectID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(lessons))
	for i, lesson := range lessons {
		ids[i] = lesson.ID
	}

	completed := map[uint]bool{}
	if userID != 0 && len(ids) > 0 {
		completed, err = s.LessonRepo.ProgressForUser(userID, ids)
		if err != nil {
			return nil, err
		}
	}

	return &SubjectDetail{
		Subject:   *subject,
		Lessons:   lessons,
		Completed: completed,
	}, nil
}

func (s *SubjectService) CreateSubject(ctx context.Context, subject *model.Subject) error {
	subject.Icon = model.NormalizeIcon(subject.Icon)
	if err := s.SubjectRepo.Create(subject); err != nil {
		return err
	}
	s.InvalidateCatalog(ctx)
	return nil
}

func (s *SubjectService) UpdateSubject(ctx context.Context, subject *model.Subject) error {
	if _, err := s.SubjectRepo.FindByID(subject.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSubjectNotFound
		}
		return err
	}
	subject.Icon = model.NormalizeIcon(subject.Icon)
	if err := s.SubjectRepo.Update(subject); err != nil {
		return err
	}
	s.InvalidateCatalog(ctx)
	return nil
}

func (s *SubjectService) DeleteSubject(ctx context.Context, id uint) error {
	if err := s.SubjectRepo.Delete(id); err != nil {
		return err
	}
	s.InvalidateCatalog(ctx)
	return nil
}
