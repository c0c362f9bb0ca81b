package reporting

import (
	"context"
	"fmt"

	"github.com/devifai-2026/feauage-backend-sub001/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// MongoSessionReader aggregates the analytics_events collection
type MongoSessionReader struct {
	events *mongo.Collection
}

func NewMongoSessionReader(events *mongo.Collection) *MongoSessionReader {
	return &MongoSessionReader{events: events}
}

var _ SessionReader = (*MongoSessionReader)(nil)

func pageViewsIn(b Bucket) bson.D {
	return bson.D{{Key: "$match", Value: bson.D{
		{Key: "type", Value: models.EventPageView},
		{Key: "timestamp", Value: bson.D{
			{Key: "$gte", Value: b.Start},
			{Key: "$lt", Value: b.End},
		}},
	}}}
}

// bySession folds page views into one document per session
var bySession = bson.D{{Key: "$group", Value: bson.D{
	{Key: "_id", Value: "$session_id"},
	{Key: "views", Value: bson.D{{Key: "$sum", Value: 1}}},
	{Key: "first", Value: bson.D{{Key: "$min", Value: "$timestamp"}}},
	{Key: "last", Value: bson.D{{Key: "$max", Value: "$timestamp"}}},
}}}

func (r *MongoSessionReader) CountSessions(ctx context.Context, b Bucket) (int64, error) {
	pipeline := mongo.Pipeline{
		pageViewsIn(b),
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$session_id"}}}},
		{{Key: "$count", Value: "sessions"}},
	}

	cursor, err := r.events.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregate sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Sessions int64 `bson:"sessions"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("decode sessions: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Sessions, nil
}

// SessionStats treats a session with a single page view as bounced. Duration is
// the span between its first and last page view.
func (r *MongoSessionReader) SessionStats(ctx context.Context, b Bucket) (models.SessionStats, error) {
	pipeline := mongo.Pipeline{
		pageViewsIn(b),
		bySession,
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "sessions", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "bounced", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{bson.D{{Key: "$lte", Value: bson.A{"$views", 1}}}, 1, 0}},
			}}}},
			{Key: "avgDuration", Value: bson.D{{Key: "$avg", Value: bson.D{
				{Key: "$divide", Value: bson.A{bson.D{{Key: "$subtract", Value: bson.A{"$last", "$first"}}}, 1000}},
			}}}},
		}}},
	}

	cursor, err := r.events.Aggregate(ctx, pipeline)
	if err != nil {
		return models.SessionStats{}, fmt.Errorf("aggregate session stats: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Sessions    int64   `bson:"sessions"`
		Bounced     int64   `bson:"bounced"`
		AvgDuration float64 `bson:"avgDuration"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return models.SessionStats{}, fmt.Errorf("decode session stats: %w", err)
	}
	if len(rows) == 0 {
		return models.SessionStats{}, nil
	}
	return models.SessionStats{
		Sessions:           rows[0].Sessions,
		BouncedSessions:    rows[0].Bounced,
		AvgSessionDuration: rows[0].AvgDuration,
	}, nil
}
