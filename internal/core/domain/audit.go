package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit actions recorded for mutating operations.
const (
	AuditCreated  = "created"
	AuditUpdated  = "updated"
	AuditDeleted  = "deleted"
	AuditLogin    = "login"
	AuditLogout   = "logout"
	AuditPromoted = "promoted"
)

// AuditEvent is an asynchronous record of a successful mutation. Events for
// the same entity are persisted in the order they were enqueued.
type AuditEvent struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Actor      string             `json:"actor" bson:"actor"`
	Action     string             `json:"action" bson:"action"`
	EntityType string             `json:"entity_type" bson:"entity_type"`
	EntityID   string             `json:"entity_id" bson:"entity_id"`
	At         time.Time          `json:"at" bson:"at"`
}
