package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medroster/roster-system/internal/core/domain"
)

const auditCollection = "auth_events"

type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuthEvent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Action    string             `bson:"action"`
	Email     string             `bson:"email"`
	SubjectID string             `bson:"subject_id,omitempty"`
	Role      string             `bson:"role,omitempty"`
	RemoteIP  string             `bson:"remote_ip,omitempty"`
	At        int64              `bson:"at"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, event *domain.AuthEvent) error {
	doc := mongoAuthEvent{
		Action:    string(event.Action),
		Email:     event.Email,
		SubjectID: event.SubjectID,
		Role:      string(event.Role),
		RemoteIP:  event.RemoteIP,
		At:        event.At.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		event.ID = oid.Hex()
	}
	return nil
}
