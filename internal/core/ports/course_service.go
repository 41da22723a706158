package ports

import (
	"context"

	"github.com/learnhub/learnhub-api/internal/core/domain"
)

// CreateCourseInput is the payload for a new course. Owner is the id of the
// creating user.
type CreateCourseInput struct {
	Owner       string
	Title       string
	Description string
	Thumbnail   string
	Tags        []string
}

// LessonInput is the payload for a new or updated lesson.
type LessonInput struct {
	Title       string
	Description string
	Video       string
	Thumbnail   string
	Order       int
}

// ResourceInput is the payload for a new or updated resource. Thumbnail may
// be empty; a default is applied.
type ResourceInput struct {
	Title       string
	Description string
	URL         string
	Thumbnail   string
	Order       int
}

// CourseService implements course CRUD and nested sub-resource operations.
type CourseService interface {
	List(ctx context.Context) ([]domain.Course, error)
	Get(ctx context.Context, id string) (*domain.Course, error)
	ByTags(ctx context.Context, tags []string) ([]domain.Course, error)
	Create(ctx context.Context, in CreateCourseInput) (*domain.Course, error)
	Update(ctx context.Context, actor, id string, upd CourseUpdate) (*domain.Course, error)
	// Delete removes the course and returns it as it was before deletion.
	Delete(ctx context.Context, actor, id string) (*domain.Course, error)

	Lessons(ctx context.Context, id string) ([]domain.Lesson, error)
	Resources(ctx context.Context, id string) ([]domain.Resource, error)
	Tags(ctx context.Context, id string) ([]domain.Tag, error)

	AddLesson(ctx context.Context, actor, id string, in LessonInput) (*domain.Lesson, error)
	AddResource(ctx context.Context, actor, id string, in ResourceInput) (*domain.Resource, error)
	AddTag(ctx context.Context, actor, id, name string) (*domain.Tag, error)

	UpdateLesson(ctx context.Context, actor, id, lessonID string, in LessonInput) error
	UpdateResource(ctx context.Context, actor, id, resourceID string, in ResourceInput) error

	RemoveLesson(ctx context.Context, actor, id, lessonID string) error
	RemoveResource(ctx context.Context, actor, id, resourceID string) error
	RemoveTag(ctx context.Context, actor, id, tagID string) error
}
