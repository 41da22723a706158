package mongo

import (
	"context"
	"errors"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/learnhub/learnhub-api/internal/core/domain"
	"github.com/learnhub/learnhub-api/internal/core/ports"
)

const collectionCourses = "courses"

// tagListProjection limits tag queries to the course card fields.
var tagListProjection = bson.M{"title": 1, "description": 1, "thumbnail": 1, "tags": 1}

type CourseRepository struct {
	col *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{col: db.Collection(collectionCourses)}
}

func (r *CourseRepository) List(ctx context.Context) ([]domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	courses := []domain.Course{}
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Course
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CourseRepository) FindByTags(ctx context.Context, tags []string) ([]domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx,
		bson.M{"tags.name": bson.M{"$in": tags}},
		options.Find().SetProjection(tagListProjection),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	courses := []domain.Course{}
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, course)
	if err != nil {
		return nil, err
	}

	created := *course
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid
	}
	return &created, nil
}

func (r *CourseRepository) Update(ctx context.Context, id string, upd ports.CourseUpdate) (*domain.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Course
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"title":       upd.Title,
			"description": upd.Description,
			"thumbnail":   upd.Thumbnail,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Delete removes the course document. Lessons, resources and tags live
// inside it, so removal cascades by construction.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) Lessons(ctx context.Context, id string) ([]domain.Lesson, error) {
	c, err := r.findProjected(ctx, id, bson.M{"lessons": 1})
	if err != nil {
		return nil, err
	}
	lessons := c.Lessons
	if lessons == nil {
		lessons = []domain.Lesson{}
	}
	sort.SliceStable(lessons, func(i, j int) bool { return lessons[i].Order < lessons[j].Order })
	return lessons, nil
}

func (r *CourseRepository) Resources(ctx context.Context, id string) ([]domain.Resource, error) {
	c, err := r.findProjected(ctx, id, bson.M{"resources": 1})
	if err != nil {
		return nil, err
	}
	resources := c.Resources
	if resources == nil {
		resources = []domain.Resource{}
	}
	sort.SliceStable(resources, func(i, j int) bool { return resources[i].Order < resources[j].Order })
	return resources, nil
}

func (r *CourseRepository) Tags(ctx context.Context, id string) ([]domain.Tag, error) {
	c, err := r.findProjected(ctx, id, bson.M{"tags": 1})
	if err != nil {
		return nil, err
	}
	if c.Tags == nil {
		return []domain.Tag{}, nil
	}
	return c.Tags, nil
}

func (r *CourseRepository) AddLesson(ctx context.Context, id string, lesson domain.Lesson) (*domain.Lesson, error) {
	lesson.ID = primitive.NewObjectID()
	if err := r.push(ctx, id, "lessons", lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *CourseRepository) AddResource(ctx context.Context, id string, resource domain.Resource) (*domain.Resource, error) {
	resource.ID = primitive.NewObjectID()
	if err := r.push(ctx, id, "resources", resource); err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *CourseRepository) AddTag(ctx context.Context, id string, tag domain.Tag) (*domain.Tag, error) {
	tag.ID = primitive.NewObjectID()
	if err := r.push(ctx, id, "tags", tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *CourseRepository) UpdateLesson(ctx context.Context, id, lessonID string, lesson domain.Lesson) error {
	fields := bson.M{
		"lessons.$.title":       lesson.Title,
		"lessons.$.description": lesson.Description,
		"lessons.$.video":       lesson.Video,
		"lessons.$.thumbnail":   lesson.Thumbnail,
		"lessons.$.order":       lesson.Order,
	}
	return r.setPositional(ctx, id, "lessons", lessonID, fields, domain.ErrLessonNotFound)
}

func (r *CourseRepository) UpdateResource(ctx context.Context, id, resourceID string, resource domain.Resource) error {
	fields := bson.M{
		"resources.$.title":       resource.Title,
		"resources.$.description": resource.Description,
		"resources.$.url":         resource.URL,
		"resources.$.thumbnail":   resource.Thumbnail,
		"resources.$.order":       resource.Order,
	}
	return r.setPositional(ctx, id, "resources", resourceID, fields, domain.ErrResourceNotFound)
}

func (r *CourseRepository) RemoveLesson(ctx context.Context, id, lessonID string) error {
	return r.pull(ctx, id, "lessons", lessonID, domain.ErrLessonNotFound)
}

func (r *CourseRepository) RemoveResource(ctx context.Context, id, resourceID string) error {
	return r.pull(ctx, id, "resources", resourceID, domain.ErrResourceNotFound)
}

func (r *CourseRepository) RemoveTag(ctx context.Context, id, tagID string) error {
	return r.pull(ctx, id, "tags", tagID, domain.ErrTagNotFound)
}

// --- shared primitives ---

func (r *CourseRepository) findProjected(ctx context.Context, id string, projection bson.M) (*domain.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Course
	err = r.col.FindOne(ctx, bson.M{"_id": oid}, options.FindOne().SetProjection(projection)).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, err
	}
	return &c, nil
}

// push appends one sub-document to the named array in a single atomic update.
func (r *CourseRepository) push(ctx context.Context, id, field string, value any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$push": bson.M{field: value}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

// pull removes the sub-document with the given id from the named array.
// Removing from one array never touches the others.
func (r *CourseRepository) pull(ctx context.Context, id, field, subID string, notFound error) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCourseNotFound
	}
	sid, err := primitive.ObjectIDFromHex(subID)
	if err != nil {
		return notFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, oid, bson.M{
		"$pull": bson.M{field: bson.M{"_id": sid}},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrCourseNotFound
	}
	if res.ModifiedCount == 0 {
		return notFound
	}
	return nil
}

// setPositional updates the matched array element in place via the
// positional operator.
func (r *CourseRepository) setPositional(ctx context.Context, id, field, subID string, fields bson.M, notFound error) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCourseNotFound
	}
	sid, err := primitive.ObjectIDFromHex(subID)
	if err != nil {
		return notFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid, field + "._id": sid},
		bson.M{"$set": fields},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return notFound
	}
	return nil
}
