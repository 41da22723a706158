package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/learnhub-api/internal/api/metrics"
	"github.com/learnhub/learnhub-api/internal/core/domain"
)

// CourseResolver looks up a course so its owner can be compared against the
// requesting identity. Implemented by the course repository.
type CourseResolver interface {
	FindByID(ctx context.Context, id string) (*domain.Course, error)
}

// RequireOwner allows the request when the authenticated identity matches
// the :id path parameter. The configured application owner bypasses the
// check.
func RequireOwner(appOwnerID string) echo.MiddlewareFunc {
	return requirePredicate("owner", func(c echo.Context, identity *domain.User) bool {
		return isOwner(c, identity, appOwnerID)
	})
}

// RequireAdmin allows the request when the identity holds the admin role.
func RequireAdmin() echo.MiddlewareFunc {
	return requirePredicate("admin", func(_ echo.Context, identity *domain.User) bool {
		return identity.IsAdmin()
	})
}

// RequireCourseOwner resolves the owner of course :id and allows the request
// when it matches the identity (or the identity is the application owner).
// A failed lookup denies.
func RequireCourseOwner(courses CourseResolver, appOwnerID string) echo.MiddlewareFunc {
	return requirePredicate("course_owner", func(c echo.Context, identity *domain.User) bool {
		return isCourseOwner(c, courses, identity, appOwnerID)
	})
}

// RequireCourseOwnerOrAdmin allows the request when the identity owns course
// :id or holds the admin role. The two predicates are evaluated as booleans
// and combined with a short-circuit OR: the course lookup only happens when
// the admin check alone does not settle it.
func RequireCourseOwnerOrAdmin(courses CourseResolver, appOwnerID string) echo.MiddlewareFunc {
	return requirePredicate("course_owner_or_admin", func(c echo.Context, identity *domain.User) bool {
		return identity.IsAdmin() || isCourseOwner(c, courses, identity, appOwnerID)
	})
}

// requirePredicate wraps a predicate into middleware: deny with 401 and count
// the failing check, or pass through. Predicates run strictly after
// Authenticate; a missing identity denies.
func requirePredicate(check string, allow func(echo.Context, *domain.User) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := Identity(c)
			if !ok || !allow(c, identity) {
				metrics.AuthDenialsTotal.WithLabelValues(check).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
			}
			return next(c)
		}
	}
}

func isOwner(c echo.Context, identity *domain.User, appOwnerID string) bool {
	id := identity.ID.Hex()
	if appOwnerID != "" && id == appOwnerID {
		return true
	}
	return id == c.Param("id")
}

func isCourseOwner(c echo.Context, courses CourseResolver, identity *domain.User, appOwnerID string) bool {
	id := identity.ID.Hex()
	if appOwnerID != "" && id == appOwnerID {
		return true
	}
	course, err := courses.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return false
	}
	return !course.Owner.IsZero() && course.Owner.Hex() == id
}
