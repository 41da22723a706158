package ports

import (
	"context"

	"github.com/learnhub/learnhub-api/internal/core/domain"
)

// CourseUpdate carries the replaceable top-level fields of a course.
type CourseUpdate struct {
	Title       string
	Description string
	Thumbnail   string
}

// CourseRepository defines persistence for courses and their nested
// sub-documents. All sub-document mutations are single-document atomic
// operations on the parent course: add is an append to the named array,
// remove pulls the element with the given id, update sets the matched
// element positionally. Concurrent edits of different sub-documents on the
// same course rely only on the store's single-document atomicity.
type CourseRepository interface {
	List(ctx context.Context) ([]domain.Course, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	FindByTags(ctx context.Context, tags []string) ([]domain.Course, error)
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	Update(ctx context.Context, id string, upd CourseUpdate) (*domain.Course, error)
	Delete(ctx context.Context, id string) error

	Lessons(ctx context.Context, id string) ([]domain.Lesson, error)
	Resources(ctx context.Context, id string) ([]domain.Resource, error)
	Tags(ctx context.Context, id string) ([]domain.Tag, error)

	AddLesson(ctx context.Context, id string, lesson domain.Lesson) (*domain.Lesson, error)
	AddResource(ctx context.Context, id string, resource domain.Resource) (*domain.Resource, error)
	AddTag(ctx context.Context, id string, tag domain.Tag) (*domain.Tag, error)

	UpdateLesson(ctx context.Context, id, lessonID string, lesson domain.Lesson) error
	UpdateResource(ctx context.Context, id, resourceID string, resource domain.Resource) error

	RemoveLesson(ctx context.Context, id, lessonID string) error
	RemoveResource(ctx context.Context, id, resourceID string) error
	RemoveTag(ctx context.Context, id, tagID string) error
}
