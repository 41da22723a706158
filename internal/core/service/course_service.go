package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/learnhub/learnhub-api/internal/core/domain"
	"github.com/learnhub/learnhub-api/internal/core/ports"
)

// CourseService implements course CRUD and the nested sub-resource
// operations. Every sub-resource mutation first resolves the parent course,
// so a missing course surfaces as ErrCourseNotFound before any write.
type CourseService struct {
	courses ports.CourseRepository
	audit   ports.AuditRecorder
	logger  zerolog.Logger
}

func NewCourseService(courses ports.CourseRepository, audit ports.AuditRecorder, logger zerolog.Logger) *CourseService {
	return &CourseService{courses: courses, audit: audit, logger: logger}
}

func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	return s.courses.List(ctx)
}

func (s *CourseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	return s.courses.FindByID(ctx, id)
}

func (s *CourseService) ByTags(ctx context.Context, tags []string) ([]domain.Course, error) {
	if len(tags) == 0 {
		return nil, domain.ErrMissingFields
	}
	return s.courses.FindByTags(ctx, tags)
}

func (s *CourseService) Create(ctx context.Context, in ports.CreateCourseInput) (*domain.Course, error) {
	if in.Title == "" || in.Description == "" || in.Thumbnail == "" || len(in.Tags) == 0 {
		return nil, domain.ErrMissingFields
	}

	course := &domain.Course{
		Title:       in.Title,
		Description: in.Description,
		Thumbnail:   in.Thumbnail,
		Lessons:     []domain.Lesson{},
		Resources:   []domain.Resource{},
		Tags:        make([]domain.Tag, 0, len(in.Tags)),
	}
	if owner, err := primitive.ObjectIDFromHex(in.Owner); err == nil {
		course.Owner = owner
	}
	for _, name := range in.Tags {
		course.Tags = append(course.Tags, domain.Tag{ID: primitive.NewObjectID(), Name: name})
	}

	created, err := s.courses.Create(ctx, course)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("course_id", created.ID.Hex()).Str("owner", in.Owner).Msg("course created")
	s.recordAudit(in.Owner, domain.AuditCreated, created.ID.Hex())
	return created, nil
}

func (s *CourseService) Update(ctx context.Context, actor, id string, upd ports.CourseUpdate) (*domain.Course, error) {
	if upd.Title == "" || upd.Description == "" || upd.Thumbnail == "" {
		return nil, domain.ErrMissingFields
	}

	updated, err := s.courses.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	s.recordAudit(actor, domain.AuditUpdated, id)
	return updated, nil
}

// Delete removes the course and returns it as it was before deletion. The
// nested lessons, resources and tags disappear with the parent document.
func (s *CourseService) Delete(ctx context.Context, actor, id string) (*domain.Course, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.courses.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info().Str("course_id", id).Str("actor", actor).Msg("course deleted")
	s.recordAudit(actor, domain.AuditDeleted, id)
	return course, nil
}

func (s *CourseService) Lessons(ctx context.Context, id string) ([]domain.Lesson, error) {
	return s.courses.Lessons(ctx, id)
}

func (s *CourseService) Resources(ctx context.Context, id string) ([]domain.Resource, error) {
	return s.courses.Resources(ctx, id)
}

func (s *CourseService) Tags(ctx context.Context, id string) ([]domain.Tag, error) {
	return s.courses.Tags(ctx, id)
}

func (s *CourseService) AddLesson(ctx context.Context, actor, id string, in ports.LessonInput) (*domain.Lesson, error) {
	if in.Title == "" || in.Description == "" || in.Video == "" || in.Thumbnail == "" {
		return nil, domain.ErrMissingFields
	}
	if _, err := s.courses.FindByID(ctx, id); err != nil {
		return nil, err
	}

	lesson, err := s.courses.AddLesson(ctx, id, domain.Lesson{
		Title:       in.Title,
		Description: in.Description,
		Video:       in.Video,
		Thumbnail:   in.Thumbnail,
		Order:       in.Order,
	})
	if err != nil {
		return nil, err
	}

	s.recordAudit(actor, domain.AuditUpdated, id)
	return lesson, nil
}

func (s *CourseService) AddResource(ctx context.Context, actor, id string, in ports.ResourceInput) (*domain.Resource, error) {
	if in.Title == "" || in.Description == "" || in.URL == "" {
		return nil, domain.ErrMissingFields
	}
	if _, err := s.courses.FindByID(ctx, id); err != nil {
		return nil, err
	}

	thumbnail := in.Thumbnail
	if thumbnail == "" {
		thumbnail = domain.DefaultResourceThumbnail
	}

	resource, err := s.courses.AddResource(ctx, id, domain.Resource{
		Title:       in.Title,
		Description: in.Description,
		URL:         in.URL,
		Thumbnail:   thumbnail,
		Order:       in.Order,
	})
	if err != nil {
		return nil, err
	}

	s.recordAudit(actor, domain.AuditUpdated, id)
	return resource, nil
}

func (s *CourseService) AddTag(ctx context.Context, actor, id, name string) (*domain.Tag, error) {
	if name == "" {
		return nil, domain.ErrMissingFields
	}
	if _, err := s.courses.FindByID(ctx, id); err != nil {
		return nil, err
	}

	tag, err := s.courses.AddTag(ctx, id, domain.Tag{Name: name})
	if err != nil {
		return nil, err
	}

	s.recordAudit(actor, domain.AuditUpdated, id)
	return tag, nil
}

func (s *CourseService) UpdateLesson(ctx context.Context, actor, id, lessonID string, in ports.LessonInput) error {
	if in.Title == "" || in.Description == "" || in.Video == "" || in.Thumbnail == "" {
		return domain.ErrMissingFields
	}
	if _, err := s.courses.FindByID(ctx, id); err != nil {
		return err
	}

	err := s.courses.UpdateLesson(ctx, id, lessonID, domain.Lesson{
		Title:       in.Title,
		Description: in.Description,
		Video:       in.Video,
		Thumbnail:   in.Thumbnail,
		Order:       in.Order,
	})
	if err != nil {
		return err
	}

	s.recordAudit(actor, domain.AuditUpdated, id)
	return nil
}

func (s *CourseService) UpdateResource(ctx context.Context, actor, id, resourceID string, in ports.ResourceInput) error {
	if in.Title == "" || in.Description == "" || in.URL == "" {
		return domain.ErrMissingFields
	}
	if _, err := s.courses.FindByID(ctx, id); err != nil {
		return err
	}

	thumbnail := in.Thumbnail
	if thumbnail == "" {
		thumbnail = domain.DefaultResourceThumbnail
	}

	err := s.courses.UpdateResource(ctx, id, resourceID, domain.Resource{
		Title:       in.Title,
		Description: in.Description,
		URL:         in.URL,
		Thumbnail:   thumbnail,
		Order:       in.Order,
	})
	if err != nil {
		return err
	}

	s.recordAudit(actor, domain.AuditUpdated, id)
	return nil
}

func (s *CourseService) RemoveLesson(ctx context.Context, actor, id, lessonID string) error {
	return s.remove(ctx, actor, id, lessonID, s.courses.RemoveLesson)
}

func (s *CourseService) RemoveResource(ctx context.Context, actor, id, resourceID string) error {
	return s.remove(ctx, actor, id, resourceID, s.courses.RemoveResource)
}

func (s *CourseService) RemoveTag(ctx context.Context, actor, id, tagID string) error {
	return s.remove(ctx, actor, id, tagID, s.courses.RemoveTag)
}

func (s *CourseService) remove(ctx context.Context, actor, id, subID string, fn func(context.Context, string, string) error) error {
	if _, err := s.courses.FindByID(ctx, id); err != nil {
		return err
	}
	if err := fn(ctx, id, subID); err != nil {
		return err
	}
	s.recordAudit(actor, domain.AuditUpdated, id)
	return nil
}

func (s *CourseService) recordAudit(actor, action, courseID string) {
	s.audit.Record(domain.AuditEvent{
		Actor:      actor,
		Action:     action,
		EntityType: "course",
		EntityID:   courseID,
		At:         time.Now().UTC(),
	})
}
