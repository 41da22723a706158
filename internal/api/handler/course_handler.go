package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/learnhub-api/internal/core/ports"
)

// CourseHandler handles HTTP requests for courses and their nested lessons,
// resources and tags.
type CourseHandler struct {
	courseService ports.CourseService
}

func NewCourseHandler(courseService ports.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

type createCourseRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Thumbnail   string   `json:"thumbnail" validate:"required"`
	Tags        []string `json:"tags" validate:"required,min=1"`
}

type updateCourseRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Thumbnail   string `json:"thumbnail" validate:"required"`
}

type lessonRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Video       string `json:"video" validate:"required"`
	Thumbnail   string `json:"thumbnail" validate:"required"`
	Order       int    `json:"order"`
}

type resourceRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	URL         string `json:"URL" validate:"required"`
	Thumbnail   string `json:"thumbnail"`
	Order       int    `json:"order"`
}

type addTagRequest struct {
	Name string `json:"name" validate:"required"`
}

// List returns every course.
//
// @Summary      List courses
// @Tags         courses
// @Produce      json
// @Security     SessionToken
// @Success      200  {object}  map[string][]domain.Course
// @Failure      401  {object}  messageResponse
// @Router       /courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.courseService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "courses", courses)
}

// Get returns one course with its nested documents.
//
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Security     SessionToken
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  map[string]domain.Course
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Router       /courses/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	course, err := h.courseService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "course", course)
}

// ByTags returns courses carrying at least one of the requested tag names.
// Tags come from the query string, either repeated ?tag= values or one
// comma-separated ?tags= list.
//
// @Summary      Find courses by tag
// @Tags         courses
// @Produce      json
// @Security     SessionToken
// @Param        tag   query     string  false  "Tag name (repeatable)"
// @Param        tags  query     string  false  "Comma-separated tag names"
// @Success      200   {object}  map[string][]domain.Course
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /courses/tags/lookup [get]
func (h *CourseHandler) ByTags(c echo.Context) error {
	tags := queryTags(c)
	if len(tags) == 0 {
		return badRequest("missing tag query")
	}

	courses, err := h.courseService.ByTags(c.Request().Context(), tags)
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "courses", courses)
}

// Create registers a new course owned by the caller.
//
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        body  body      createCourseRequest  true  "Course details"
// @Success      200   {object}  map[string]domain.Course
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	course, err := h.courseService.Create(c.Request().Context(), ports.CreateCourseInput{
		Owner:       ctxActor(c),
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		Tags:        req.Tags,
	})
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "course", course)
}

// Update replaces the course's own fields. Nested documents are untouched.
//
// @Summary      Update a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        id    path      string               true  "Course id"
// @Param        body  body      updateCourseRequest  true  "New course fields"
// @Success      200   {object}  map[string]domain.Course
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /courses/{id} [put]
func (h *CourseHandler) Update(c echo.Context) error {
	var req updateCourseRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	course, err := h.courseService.Update(c.Request().Context(), ctxActor(c), c.Param("id"), ports.CourseUpdate{
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
	})
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "course", course)
}

// Delete removes the course and everything nested in it.
//
// @Summary      Delete a course
// @Tags         courses
// @Produce      json
// @Security     SessionToken
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  map[string]domain.Course
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Router       /courses/{id} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	course, err := h.courseService.Delete(c.Request().Context(), ctxActor(c), c.Param("id"))
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "course", course)
}

// Lessons returns the course's lessons sorted by order.
//
// @Summary      List a course's lessons
// @Tags         courses
// @Produce      json
// @Security     SessionToken
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  map[string][]domain.Lesson
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Router       /courses/{id}/lessons [get]
func (h *CourseHandler) Lessons(c echo.Context) error {
	lessons, err := h.courseService.Lessons(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "lessons", lessons)
}

// Resources returns the course's resources sorted by order.
//
// @Summary      List a course's resources
// @Tags         courses
// @Produce      json
// @Security     SessionToken
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  map[string][]domain.Resource
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Router       /courses/{id}/resources [get]
func (h *CourseHandler) Resources(c echo.Context) error {
	resources, err := h.courseService.Resources(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "resources", resources)
}

// Tags returns the course's tags.
//
// @Summary      List a course's tags
// @Tags         courses
// @Produce      json
// @Security     SessionToken
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  map[string][]domain.Tag
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Router       /courses/{id}/tags [get]
func (h *CourseHandler) Tags(c echo.Context) error {
	tags, err := h.courseService.Tags(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "tags", tags)
}

// AddLesson appends a lesson to the course.
//
// @Summary      Add a lesson
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        id    path      string         true  "Course id"
// @Param        body  body      lessonRequest  true  "Lesson details"
// @Success      200   {object}  map[string]domain.Lesson
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /courses/{id}/lessons [post]
func (h *CourseHandler) AddLesson(c echo.Context) error {
	var req lessonRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	lesson, err := h.courseService.AddLesson(c.Request().Context(), ctxActor(c), c.Param("id"), lessonInput(req))
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "lesson", lesson)
}

// UpdateLesson replaces one lesson in place.
//
// @Summary      Update a lesson
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        id        path      string         true  "Course id"
// @Param        lessonId  path      string         true  "Lesson id"
// @Param        body      body      lessonRequest  true  "New lesson fields"
// @Success      200       {object}  messageResponse
// @Failure      400       {object}  messageResponse
// @Failure      401       {object}  messageResponse
// @Router       /courses/{id}/lessons/{lessonId} [put]
func (h *CourseHandler) UpdateLesson(c echo.Context) error {
	var req lessonRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	err := h.courseService.UpdateLesson(c.Request().Context(), ctxActor(c), c.Param("id"), c.Param("lessonId"), lessonInput(req))
	if err != nil {
		return err
	}
	return message(c, http.StatusOK, "Lesson updated")
}

// RemoveLesson deletes one lesson; its siblings keep their ids and order.
//
// @Summary      Remove a lesson
// @Tags         courses
// @Produce      json
// @Security     SessionToken
// @Param        id        path      string  true  "Course id"
// @Param        lessonId  path      string  true  "Lesson id"
// @Success      200       {object}  messageResponse
// @Failure      400       {object}  messageResponse
// @Failure      401       {object}  messageResponse
// @Router       /courses/{id}/lessons/{lessonId} [delete]
func (h *CourseHandler) RemoveLesson(c echo.Context) error {
	err := h.courseService.RemoveLesson(c.Request().Context(), ctxActor(c), c.Param("id"), c.Param("lessonId"))
	if err != nil {
		return err
	}
	return message(c, http.StatusOK, "Lesson removed")
}

// AddResource appends a resource to the course.
//
// @Summary      Add a resource
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        id    path      string           true  "Course id"
// @Param        body  body      resourceRequest  true  "Resource details"
// @Success      200   {object}  map[string]domain.Resource
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /courses/{id}/resources [post]
func (h *CourseHandler) AddResource(c echo.Context) error {
	var req resourceRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	resource, err := h.courseService.AddResource(c.Request().Context(), ctxActor(c), c.Param("id"), resourceInput(req))
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "resource", resource)
}

// UpdateResource replaces one resource in place.
//
// @Summary      Update a resource
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        id          path      string           true  "Course id"
// @Param        resourceId  path      string           true  "Resource id"
// @Param        body        body      resourceRequest  true  "New resource fields"
// @Success      200         {object}  messageResponse
// @Failure      400         {object}  messageResponse
// @Failure      401         {object}  messageResponse
// @Router       /courses/{id}/resources/{resourceId} [put]
func (h *CourseHandler) UpdateResource(c echo.Context) error {
	var req resourceRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	err := h.courseService.UpdateResource(c.Request().Context(), ctxActor(c), c.Param("id"), c.Param("resourceId"), resourceInput(req))
	if err != nil {
		return err
	}
	return message(c, http.StatusOK, "Resource updated")
}

// RemoveResource deletes one resource from the course.
//
// @Summary      Remove a resource
// @Tags         courses
// @Produce      json
// @Security     SessionToken
// @Param        id          path      string  true  "Course id"
// @Param        resourceId  path      string  true  "Resource id"
// @Success      200         {object}  messageResponse
// @Failure      400         {object}  messageResponse
// @Failure      401         {object}  messageResponse
// @Router       /courses/{id}/resources/{resourceId} [delete]
func (h *CourseHandler) RemoveResource(c echo.Context) error {
	err := h.courseService.RemoveResource(c.Request().Context(), ctxActor(c), c.Param("id"), c.Param("resourceId"))
	if err != nil {
		return err
	}
	return message(c, http.StatusOK, "Resource removed")
}

// AddTag attaches a tag to the course.
//
// @Summary      Add a tag
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        id    path      string        true  "Course id"
// @Param        body  body      addTagRequest true  "Tag name"
// @Success      200   {object}  map[string]domain.Tag
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /courses/{id}/tags [post]
func (h *CourseHandler) AddTag(c echo.Context) error {
	var req addTagRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	tag, err := h.courseService.AddTag(c.Request().Context(), ctxActor(c), c.Param("id"), req.Name)
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "tag", tag)
}

// RemoveTag detaches one tag from the course.
//
// @Summary      Remove a tag
// @Tags         courses
// @Produce      json
// @Security     SessionToken
// @Param        id     path      string  true  "Course id"
// @Param        tagId  path      string  true  "Tag id"
// @Success      200    {object}  messageResponse
// @Failure      400    {object}  messageResponse
// @Failure      401    {object}  messageResponse
// @Router       /courses/{id}/tags/{tagId} [delete]
func (h *CourseHandler) RemoveTag(c echo.Context) error {
	err := h.courseService.RemoveTag(c.Request().Context(), ctxActor(c), c.Param("id"), c.Param("tagId"))
	if err != nil {
		return err
	}
	return message(c, http.StatusOK, "Tag removed")
}

func lessonInput(req lessonRequest) ports.LessonInput {
	return ports.LessonInput{
		Title:       req.Title,
		Description: req.Description,
		Video:       req.Video,
		Thumbnail:   req.Thumbnail,
		Order:       req.Order,
	}
}

func resourceInput(req resourceRequest) ports.ResourceInput {
	return ports.ResourceInput{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Thumbnail:   req.Thumbnail,
		Order:       req.Order,
	}
}

func queryTags(c echo.Context) []string {
	tags := make([]string, 0, 4)
	for _, t := range c.QueryParams()["tag"] {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	for _, t := range strings.Split(c.QueryParam("tags"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
