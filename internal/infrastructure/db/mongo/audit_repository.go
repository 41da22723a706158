package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/learnhub/learnhub-api/internal/core/domain"
)

const collectionAuditEvents = "audit_events"

type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAuditEvents)}
}

func (r *AuditRepository) Insert(ctx context.Context, event domain.AuditEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, event)
	return err
}
