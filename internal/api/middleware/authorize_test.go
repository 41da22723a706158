package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/learnhub/learnhub-api/internal/core/domain"
)

type stubCourses struct {
	courses map[string]*domain.Course
	calls   int
}

func (s *stubCourses) FindByID(_ context.Context, id string) (*domain.Course, error) {
	s.calls++
	if c, ok := s.courses[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCourseNotFound
}

func newAuthzContext(identity *domain.User, paramID string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set(identityKey, identity)
	}
	if paramID != "" {
		c.SetParamNames("id")
		c.SetParamValues(paramID)
	}
	return c
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func denyHandler(t *testing.T) echo.HandlerFunc {
	return func(echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	}
}

func TestRequireOwner_AllowsSelf(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID()}
	c := newAuthzContext(user, user.ID.Hex())

	if err := RequireOwner("")(okHandler)(c); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
}

func TestRequireOwner_DeniesOther(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID()}
	c := newAuthzContext(user, primitive.NewObjectID().Hex())

	if code := httpCode(t, RequireOwner("")(denyHandler(t))(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestRequireOwner_AppOwnerBypass(t *testing.T) {
	appOwner := &domain.User{ID: primitive.NewObjectID()}
	c := newAuthzContext(appOwner, primitive.NewObjectID().Hex())

	if err := RequireOwner(appOwner.ID.Hex())(okHandler)(c); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
}

func TestRequireAdmin(t *testing.T) {
	admin := &domain.User{ID: primitive.NewObjectID(), Authentication: domain.Authentication{Role: domain.RoleAdmin}}
	if err := RequireAdmin()(okHandler)(newAuthzContext(admin, "")); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}

	user := &domain.User{ID: primitive.NewObjectID(), Authentication: domain.Authentication{Role: domain.RoleUser}}
	if code := httpCode(t, RequireAdmin()(denyHandler(t))(newAuthzContext(user, ""))); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestRequireAdmin_MissingIdentity(t *testing.T) {
	if code := httpCode(t, RequireAdmin()(denyHandler(t))(newAuthzContext(nil, ""))); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestRequireCourseOwner(t *testing.T) {
	owner := &domain.User{ID: primitive.NewObjectID()}
	course := &domain.Course{ID: primitive.NewObjectID(), Owner: owner.ID}
	courses := &stubCourses{courses: map[string]*domain.Course{course.ID.Hex(): course}}

	if err := RequireCourseOwner(courses, "")(okHandler)(newAuthzContext(owner, course.ID.Hex())); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}

	stranger := &domain.User{ID: primitive.NewObjectID()}
	if code := httpCode(t, RequireCourseOwner(courses, "")(denyHandler(t))(newAuthzContext(stranger, course.ID.Hex()))); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestRequireCourseOwner_MissingCourse(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID()}
	courses := &stubCourses{courses: map[string]*domain.Course{}}

	if code := httpCode(t, RequireCourseOwner(courses, "")(denyHandler(t))(newAuthzContext(user, primitive.NewObjectID().Hex()))); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestRequireCourseOwnerOrAdmin_AdminSkipsLookup(t *testing.T) {
	admin := &domain.User{ID: primitive.NewObjectID(), Authentication: domain.Authentication{Role: domain.RoleAdmin}}
	courses := &stubCourses{courses: map[string]*domain.Course{}}

	if err := RequireCourseOwnerOrAdmin(courses, "")(okHandler)(newAuthzContext(admin, primitive.NewObjectID().Hex())); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
	if courses.calls != 0 {
		t.Fatalf("admin check should short-circuit the course lookup, got %d calls", courses.calls)
	}
}

func TestRequireCourseOwnerOrAdmin_OwnerAllowed(t *testing.T) {
	owner := &domain.User{ID: primitive.NewObjectID(), Authentication: domain.Authentication{Role: domain.RoleUser}}
	course := &domain.Course{ID: primitive.NewObjectID(), Owner: owner.ID}
	courses := &stubCourses{courses: map[string]*domain.Course{course.ID.Hex(): course}}

	if err := RequireCourseOwnerOrAdmin(courses, "")(okHandler)(newAuthzContext(owner, course.ID.Hex())); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
}

func TestRequireCourseOwnerOrAdmin_DeniesNeither(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), Authentication: domain.Authentication{Role: domain.RoleUser}}
	course := &domain.Course{ID: primitive.NewObjectID(), Owner: primitive.NewObjectID()}
	courses := &stubCourses{courses: map[string]*domain.Course{course.ID.Hex(): course}}

	if code := httpCode(t, RequireCourseOwnerOrAdmin(courses, "")(denyHandler(t))(newAuthzContext(user, course.ID.Hex()))); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestRequireCourseOwnerOrAdmin_OwnerlessCourseDenies(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), Authentication: domain.Authentication{Role: domain.RoleUser}}
	course := &domain.Course{ID: primitive.NewObjectID()}
	courses := &stubCourses{courses: map[string]*domain.Course{course.ID.Hex(): course}}

	if code := httpCode(t, RequireCourseOwnerOrAdmin(courses, "")(denyHandler(t))(newAuthzContext(user, course.ID.Hex()))); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}
