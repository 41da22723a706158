package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/learnhub/learnhub-api/internal/core/domain"
	"github.com/learnhub/learnhub-api/internal/core/ports"
)

type stubCourseRepo struct {
	courses map[string]*domain.Course
}

func newStubCourseRepo() *stubCourseRepo {
	return &stubCourseRepo{courses: make(map[string]*domain.Course)}
}

func cloneCourse(c *domain.Course) *domain.Course {
	clone := *c
	clone.Lessons = append(c.Lessons[:0:0], c.Lessons...)
	clone.Resources = append(c.Resources[:0:0], c.Resources...)
	clone.Tags = append(c.Tags[:0:0], c.Tags...)
	return &clone
}

func (r *stubCourseRepo) List(context.Context) ([]domain.Course, error) {
	out := make([]domain.Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, *cloneCourse(c))
	}
	return out, nil
}

func (r *stubCourseRepo) FindByID(_ context.Context, id string) (*domain.Course, error) {
	if c, ok := r.courses[id]; ok {
		return cloneCourse(c), nil
	}
	return nil, domain.ErrCourseNotFound
}

func (r *stubCourseRepo) FindByTags(_ context.Context, tags []string) ([]domain.Course, error) {
	wanted := make(map[string]bool, len(tags))
	for _, t := range tags {
		wanted[t] = true
	}
	var out []domain.Course
	for _, c := range r.courses {
		for _, tag := range c.Tags {
			if wanted[tag.Name] {
				out = append(out, *cloneCourse(c))
				break
			}
		}
	}
	return out, nil
}

func (r *stubCourseRepo) Create(_ context.Context, course *domain.Course) (*domain.Course, error) {
	copy := cloneCourse(course)
	copy.ID = primitive.NewObjectID()
	r.courses[copy.ID.Hex()] = cloneCourse(copy)
	return copy, nil
}

func (r *stubCourseRepo) Update(_ context.Context, id string, upd ports.CourseUpdate) (*domain.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	c.Title = upd.Title
	c.Description = upd.Description
	c.Thumbnail = upd.Thumbnail
	return cloneCourse(c), nil
}

func (r *stubCourseRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.courses[id]; !ok {
		return domain.ErrCourseNotFound
	}
	delete(r.courses, id)
	return nil
}

func (r *stubCourseRepo) Lessons(_ context.Context, id string) ([]domain.Lesson, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	return append([]domain.Lesson(nil), c.Lessons...), nil
}

func (r *stubCourseRepo) Resources(_ context.Context, id string) ([]domain.Resource, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	return append([]domain.Resource(nil), c.Resources...), nil
}

func (r *stubCourseRepo) Tags(_ context.Context, id string) ([]domain.Tag, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	return append([]domain.Tag(nil), c.Tags...), nil
}

func (r *stubCourseRepo) AddLesson(_ context.Context, id string, lesson domain.Lesson) (*domain.Lesson, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	lesson.ID = primitive.NewObjectID()
	c.Lessons = append(c.Lessons, lesson)
	return &lesson, nil
}

func (r *stubCourseRepo) AddResource(_ context.Context, id string, resource domain.Resource) (*domain.Resource, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	resource.ID = primitive.NewObjectID()
	c.Resources = append(c.Resources, resource)
	return &resource, nil
}

func (r *stubCourseRepo) AddTag(_ context.Context, id string, tag domain.Tag) (*domain.Tag, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	tag.ID = primitive.NewObjectID()
	c.Tags = append(c.Tags, tag)
	return &tag, nil
}

func (r *stubCourseRepo) UpdateLesson(_ context.Context, id, lessonID string, lesson domain.Lesson) error {
	c, ok := r.courses[id]
	if !ok {
		return domain.ErrCourseNotFound
	}
	for i := range c.Lessons {
		if c.Lessons[i].ID.Hex() == lessonID {
			lesson.ID = c.Lessons[i].ID
			c.Lessons[i] = lesson
			return nil
		}
	}
	return domain.ErrLessonNotFound
}

func (r *stubCourseRepo) UpdateResource(_ context.Context, id, resourceID string, resource domain.Resource) error {
	c, ok := r.courses[id]
	if !ok {
		return domain.ErrCourseNotFound
	}
	for i := range c.Resources {
		if c.Resources[i].ID.Hex() == resourceID {
			resource.ID = c.Resources[i].ID
			c.Resources[i] = resource
			return nil
		}
	}
	return domain.ErrResourceNotFound
}

func (r *stubCourseRepo) RemoveLesson(_ context.Context, id, lessonID string) error {
	c, ok := r.courses[id]
	if !ok {
		return domain.ErrCourseNotFound
	}
	for i := range c.Lessons {
		if c.Lessons[i].ID.Hex() == lessonID {
			c.Lessons = append(c.Lessons[:i], c.Lessons[i+1:]...)
			return nil
		}
	}
	return domain.ErrLessonNotFound
}

func (r *stubCourseRepo) RemoveResource(_ context.Context, id, resourceID string) error {
	c, ok := r.courses[id]
	if !ok {
		return domain.ErrCourseNotFound
	}
	for i := range c.Resources {
		if c.Resources[i].ID.Hex() == resourceID {
			c.Resources = append(c.Resources[:i], c.Resources[i+1:]...)
			return nil
		}
	}
	return domain.ErrResourceNotFound
}

func (r *stubCourseRepo) RemoveTag(_ context.Context, id, tagID string) error {
	c, ok := r.courses[id]
	if !ok {
		return domain.ErrCourseNotFound
	}
	for i := range c.Tags {
		if c.Tags[i].ID.Hex() == tagID {
			c.Tags = append(c.Tags[:i], c.Tags[i+1:]...)
			return nil
		}
	}
	return domain.ErrTagNotFound
}

func newCourseService(repo ports.CourseRepository) *CourseService {
	return NewCourseService(repo, ports.NoopRecorder{}, zerolog.Nop())
}

func seedCourse(t *testing.T, svc *CourseService) *domain.Course {
	t.Helper()
	course, err := svc.Create(context.Background(), ports.CreateCourseInput{
		Owner:       primitive.NewObjectID().Hex(),
		Title:       "Practical Go",
		Description: "Servers, workers and storage",
		Thumbnail:   "https://img.example.com/go.png",
		Tags:        []string{"go", "backend"},
	})
	require.NoError(t, err)
	return course
}

func TestCourseService_Create(t *testing.T) {
	svc := newCourseService(newStubCourseRepo())

	course := seedCourse(t, svc)
	require.False(t, course.ID.IsZero())
	require.False(t, course.Owner.IsZero())
	require.Len(t, course.Tags, 2)
	for _, tag := range course.Tags {
		require.False(t, tag.ID.IsZero())
	}
	require.NotNil(t, course.Lessons)
	require.Empty(t, course.Lessons)
}

func TestCourseService_Create_MissingFields(t *testing.T) {
	svc := newCourseService(newStubCourseRepo())

	_, err := svc.Create(context.Background(), ports.CreateCourseInput{
		Title:       "Practical Go",
		Description: "desc",
		Thumbnail:   "thumb",
	})
	require.ErrorIs(t, err, domain.ErrMissingFields)
}

func TestCourseService_Delete_ReturnsCourse(t *testing.T) {
	repo := newStubCourseRepo()
	svc := newCourseService(repo)

	course := seedCourse(t, svc)

	deleted, err := svc.Delete(context.Background(), "actor", course.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, course.ID, deleted.ID)

	_, err = svc.Get(context.Background(), course.ID.Hex())
	require.ErrorIs(t, err, domain.ErrCourseNotFound)
}

func TestCourseService_AddLesson(t *testing.T) {
	svc := newCourseService(newStubCourseRepo())
	course := seedCourse(t, svc)

	lesson, err := svc.AddLesson(context.Background(), "actor", course.ID.Hex(), ports.LessonInput{
		Title:       "Intro",
		Description: "Getting started",
		Video:       "https://vid.example.com/1",
		Thumbnail:   "https://img.example.com/1.png",
		Order:       1,
	})
	require.NoError(t, err)
	require.False(t, lesson.ID.IsZero())

	lessons, err := svc.Lessons(context.Background(), course.ID.Hex())
	require.NoError(t, err)
	require.Len(t, lessons, 1)
}

func TestCourseService_AddLesson_MissingCourse(t *testing.T) {
	svc := newCourseService(newStubCourseRepo())

	_, err := svc.AddLesson(context.Background(), "actor", primitive.NewObjectID().Hex(), ports.LessonInput{
		Title:       "Intro",
		Description: "Getting started",
		Video:       "https://vid.example.com/1",
		Thumbnail:   "https://img.example.com/1.png",
	})
	require.ErrorIs(t, err, domain.ErrCourseNotFound)
}

func TestCourseService_RemoveLesson_LeavesSiblings(t *testing.T) {
	svc := newCourseService(newStubCourseRepo())
	course := seedCourse(t, svc)
	other := seedCourse(t, svc)

	first, err := svc.AddLesson(context.Background(), "actor", course.ID.Hex(), ports.LessonInput{
		Title: "First", Description: "d", Video: "v", Thumbnail: "t", Order: 1,
	})
	require.NoError(t, err)
	second, err := svc.AddLesson(context.Background(), "actor", course.ID.Hex(), ports.LessonInput{
		Title: "Second", Description: "d", Video: "v", Thumbnail: "t", Order: 2,
	})
	require.NoError(t, err)

	resource, err := svc.AddResource(context.Background(), "actor", course.ID.Hex(), ports.ResourceInput{
		Title:       "Slides",
		Description: "Deck",
		URL:         "https://files.example.com/slides.pdf",
	})
	require.NoError(t, err)

	otherLesson, err := svc.AddLesson(context.Background(), "actor", other.ID.Hex(), ports.LessonInput{
		Title: "Elsewhere", Description: "d", Video: "v", Thumbnail: "t", Order: 1,
	})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveLesson(context.Background(), "actor", course.ID.Hex(), first.ID.Hex()))

	lessons, err := svc.Lessons(context.Background(), course.ID.Hex())
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	require.Equal(t, second.ID, lessons[0].ID)
	require.Equal(t, 2, lessons[0].Order)

	resources, err := svc.Resources(context.Background(), course.ID.Hex())
	require.NoError(t, err)
	require.Len(t, resources, 1)
	require.Equal(t, resource.ID, resources[0].ID)

	tags, err := svc.Tags(context.Background(), course.ID.Hex())
	require.NoError(t, err)
	require.Len(t, tags, 2)

	otherLessons, err := svc.Lessons(context.Background(), other.ID.Hex())
	require.NoError(t, err)
	require.Len(t, otherLessons, 1)
	require.Equal(t, otherLesson.ID, otherLessons[0].ID)
}

func TestCourseService_UpdateLesson(t *testing.T) {
	svc := newCourseService(newStubCourseRepo())
	course := seedCourse(t, svc)

	lesson, err := svc.AddLesson(context.Background(), "actor", course.ID.Hex(), ports.LessonInput{
		Title: "First", Description: "d", Video: "v", Thumbnail: "t", Order: 1,
	})
	require.NoError(t, err)

	err = svc.UpdateLesson(context.Background(), "actor", course.ID.Hex(), lesson.ID.Hex(), ports.LessonInput{
		Title: "Renamed", Description: "d2", Video: "v2", Thumbnail: "t2", Order: 5,
	})
	require.NoError(t, err)

	lessons, err := svc.Lessons(context.Background(), course.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, "Renamed", lessons[0].Title)
	require.Equal(t, lesson.ID, lessons[0].ID)

	err = svc.UpdateLesson(context.Background(), "actor", course.ID.Hex(), primitive.NewObjectID().Hex(), ports.LessonInput{
		Title: "x", Description: "d", Video: "v", Thumbnail: "t",
	})
	require.ErrorIs(t, err, domain.ErrLessonNotFound)
}

func TestCourseService_AddResource_DefaultThumbnail(t *testing.T) {
	svc := newCourseService(newStubCourseRepo())
	course := seedCourse(t, svc)

	resource, err := svc.AddResource(context.Background(), "actor", course.ID.Hex(), ports.ResourceInput{
		Title:       "Cheat sheet",
		Description: "One pager",
		URL:         "https://files.example.com/cheatsheet.pdf",
	})
	require.NoError(t, err)
	require.Equal(t, domain.DefaultResourceThumbnail, resource.Thumbnail)
}

func TestCourseService_TagLifecycle(t *testing.T) {
	svc := newCourseService(newStubCourseRepo())
	course := seedCourse(t, svc)

	tag, err := svc.AddTag(context.Background(), "actor", course.ID.Hex(), "concurrency")
	require.NoError(t, err)
	require.False(t, tag.ID.IsZero())

	matches, err := svc.ByTags(context.Background(), []string{"concurrency"})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	require.NoError(t, svc.RemoveTag(context.Background(), "actor", course.ID.Hex(), tag.ID.Hex()))

	tags, err := svc.Tags(context.Background(), course.ID.Hex())
	require.NoError(t, err)
	require.Len(t, tags, 2)
}
