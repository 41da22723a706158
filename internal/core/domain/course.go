package domain

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrCourseNotFound = errors.New("course not found")
var ErrLessonNotFound = errors.New("lesson not found")
var ErrResourceNotFound = errors.New("resource not found")
var ErrTagNotFound = errors.New("tag not found")

// DefaultResourceThumbnail is applied when a resource is created without one.
const DefaultResourceThumbnail = "https://cdn-icons-png.flaticon.com/512/3858/3858629.png"

// Lesson is an ordered unit of course content. Ordering follows the explicit
// Order field, not insertion order.
type Lesson struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Video       string             `json:"video" bson:"video"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Order       int                `json:"order" bson:"order"`
}

// Resource is supplementary course material linked by URL.
type Resource struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	URL         string             `json:"URL" bson:"url"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Order       int                `json:"order" bson:"order"`
}

// Tag labels a course. Tags are sub-documents rather than bare strings so a
// single tag can be removed by its own id.
type Tag struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
}

// Course is the aggregate root owning its lessons, resources and tags.
// Sub-documents have no lifecycle outside the course; deleting the course
// removes them.
type Course struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Owner       primitive.ObjectID `json:"owner,omitempty" bson:"owner,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Lessons     []Lesson           `json:"lessons" bson:"lessons"`
	Resources   []Resource         `json:"resources" bson:"resources"`
	Tags        []Tag              `json:"tags" bson:"tags"`
}
