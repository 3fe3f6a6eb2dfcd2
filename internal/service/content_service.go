package service

import (
	"context"
	"edupiyasa_backend/internal/model"
	"edupiyasa_backend/internal/repository"
	"edupiyasa_backend/internal/util"
	"edupiyasa_backend/pkg/logger"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContentService backs the admin console: content CRUD, file uploads and the
// headline statistics.
type ContentService struct {
	LessonRepo     *repository.LessonRepository
	AssignmentRepo *repository.AssignmentRepository
	TextbookRepo   *repository.TextbookRepository
	ActivityRepo   *repository.ActivityRepository
	UserRepo       *repository.UserRepository
	Storage        *StorageService
}

func NewContentService(
	lessonRepo *repository.LessonRepository,
	assignmentRepo *repository.AssignmentRepository,
	textbookRepo *repository.TextbookRepository,
	activityRepo *repository.ActivityRepository,
	userRepo *repository.UserRepository,
	storage *StorageService,
) *ContentService {
	return &ContentService{
		LessonRepo:     lessonRepo,
		AssignmentRepo: assignmentRepo,
		TextbookRepo:   textbookRepo,
		ActivityRepo:   activityRepo,
		UserRepo:       userRepo,
		Storage:        storage,
	}
}

// AdminStats are the counters on the console landing page.
type AdminStats struct {
	Lessons     int64 `json:"lessons"`
	Students    int64 `json:"students"`
	Assignments int64 `json:"assignments"`
}

func (s *ContentService) Stats() (*AdminStats, error) {
	lessons, err := s.LessonRepo.Count()
	if err != nil {
		return nil, err
	}
	students, err := s.UserRepo.CountByRole(model.Student)
	if err != nil {
		return nil, err
	}
	assignments, err := s.AssignmentRepo.Count()
	if err != nil {
		return nil, err
	}
	return &AdminStats{Lessons: lessons, Students: students, Assignments: assignments}, nil
}

func (s *ContentService) ListLessons() ([]model.Lesson, error) {
	return s.LessonRepo.FindAll()
}

func (s *ContentService) CreateLesson(lesson *model.Lesson) error {
	return s.LessonRepo.Create(lesson)
}

func (s *ContentService) UpdateLesson(lesson *model.Lesson) error {
	return s.LessonRepo.Update(lesson)
}

func (s *ContentService) DeleteLesson(id uint) error {
	return s.LessonRepo.Delete(id)
}

func (s *ContentService) ListAssignments() ([]model.Assignment, error) {
	return s.AssignmentRepo.FindAll()
}

func (s *ContentService) CreateAssignment(assignment *model.Assignment) error {
	return s.AssignmentRepo.Create(assignment)
}

func (s *ContentService) DeleteAssignment(id uint) error {
	return s.AssignmentRepo.Delete(id)
}

func (s *ContentService) CreateTextbook(textbook *model.Textbook) error {
	return s.TextbookRepo.Create(textbook)
}

func (s *ContentService) UpdateTextbook(textbook *model.Textbook) error {
	return s.TextbookRepo.Update(textbook)
}

// DeleteTextbook removes the row and best-effort cleans up the stored PDF and
// cover. Externally hosted URLs are left alone.
func (s *ContentService) DeleteTextbook(ctx context.Context, id uint) error {
	textbook, err := s.TextbookRepo.FindByID(id)
	if err == nil {
		s.removeStoredFile(ctx, textbook.PDFURL)
		s.removeStoredFile(ctx, textbook.CoverImageURL)
	}
	return s.TextbookRepo.Delete(id)
}

func (s *ContentService) removeStoredFile(ctx context.Context, url string) {
	if url == "" {
		return
	}
	prefix := s.Storage.GetURL("")
	if prefix == "" || !strings.HasPrefix(url, prefix) {
		return
	}
	name := strings.TrimPrefix(url, prefix)
	if err := s.Storage.Delete(ctx, name); err != nil {
		logger.Log.Warn("stored file cleanup failed",
			zap.String("object", name),
			zap.Error(err))
	}
}

func (s *ContentService) CreateActivity(activity *model.Activity) error {
	activity.Pairs = normalizePairs(activity.Pairs)
	return s.ActivityRepo.Create(activity)
}

func (s *ContentService) DeleteActivity(id uint) error {
	return s.ActivityRepo.Delete(id)
}

func normalizePairs(pairs model.MatchPairList) model.MatchPairList {
	out := pairs[:0]
	for _, p := range pairs {
		if p.Left == "" || p.Right == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// UploadResult describes a stored file plus any media metadata probed from it.
type UploadResult struct {
	URL          string  `json:"url"`
	Size         string  `json:"size"`
	Duration     float64 `json:"duration,omitempty"`     // seconds, videos only
	ThumbnailURL string  `json:"thumbnailUrl,omitempty"` // videos only
}

// UploadPDF stores a textbook or lesson PDF under a random name.
func (s *ContentService) UploadPDF(ctx context.Context, file *multipart.FileHeader) (*UploadResult, error) {
	return s.uploadValidated(ctx, file, "pdfs", []string{util.MimePDF})
}

// UploadCoverImage stores a textbook cover image.
func (s *ContentService) UploadCoverImage(ctx context.Context, file *multipart.FileHeader) (*UploadResult, error) {
	return s.uploadValidated(ctx, file, "covers", []string{util.MimeImage})
}

func (s *ContentService) uploadValidated(ctx context.Context, file *multipart.FileHeader, prefix string, allowed []string) (*UploadResult, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, allowed)
	if err != nil {
		return nil, err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), filepath.Ext(file.Filename))
	url, err := s.Storage.Upload(ctx, name, src, file.Size, mimeType)
	if err != nil {
		return nil, err
	}

	return &UploadResult{URL: url, Size: util.HumanFileSize(file.Size)}, nil
}

// UploadLessonVideo stores a lesson video and probes its duration. The file is
// staged on local disk first because ffprobe needs a path.
func (s *ContentService) UploadLessonVideo(ctx context.Context, file *multipart.FileHeader) (*UploadResult, error) {
	if !util.ValidVideoExtension(filepath.Ext(file.Filename)) {
		return nil, fmt.Errorf("unsupported video extension %q", filepath.Ext(file.Filename))
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, []string{util.MimeVideo})
	if err != nil {
		return nil, err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp("", "lesson-video-*"+filepath.Ext(file.Filename))
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		return nil, err
	}

	result := &UploadResult{Size: util.HumanFileSize(file.Size)}
	if info, err := util.ProbeVideo(tmp.Name()); err != nil {
		logger.Log.Warn("video probe failed",
			zap.String("filename", file.Filename),
			zap.Error(err))
	} else {
		result.Duration = info.Duration
	}

	id := uuid.New().String()
	name := fmt.Sprintf("videos/%s%s", id, filepath.Ext(file.Filename))
	url, err := s.Storage.UploadFile(ctx, name, tmp.Name(), mimeType)
	if err != nil {
		return nil, err
	}
	result.URL = url

	thumbPath := filepath.Join(os.TempDir(), id+".jpg")
	if err := util.GenerateThumbnail(tmp.Name(), thumbPath, "00:00:01"); err != nil {
		logger.Log.Warn("thumbnail generation failed",
			zap.String("filename", file.Filename),
			zap.Error(err))
		return result, nil
	}
	defer os.Remove(thumbPath)

	thumbURL, err := s.Storage.UploadFile(ctx, fmt.Sprintf("videos/thumbs/%s.jpg", id), thumbPath, "image/jpeg")
	if err != nil {
		logger.Log.Warn("thumbnail upload failed", zap.Error(err))
		return result, nil
	}
	result.ThumbnailURL = thumbURL

	return result, nil
}
