package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkwell/publishing-api/internal/core/domain"
	"github.com/inkwell/publishing-api/internal/core/ports"
)

// ActivityRepository writes audit events to the activity_events collection.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) ports.ActivityRepository {
	return &ActivityRepository{coll: db.Collection("activity_events")}
}

func (r *ActivityRepository) Insert(ctx context.Context, event *domain.ActivityEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"entity_type": event.EntityType,
		"entity_id":   event.EntityID,
		"action":      event.Action,
		"actor_id":    event.ActorID,
		"occurred_at": event.OccurredAt,
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return err
}
