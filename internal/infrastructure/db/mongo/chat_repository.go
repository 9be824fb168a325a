package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inkwell/publishing-api/internal/core/ports"
)

// ChatHistoryRepository stores chat exchanges in the chat_history collection.
type ChatHistoryRepository struct {
	coll *mongo.Collection
}

func NewChatHistoryRepository(db *mongo.Database) *ChatHistoryRepository {
	return &ChatHistoryRepository{coll: db.Collection("chat_history")}
}

type mongoChatExchange struct {
	Question string    `bson:"user"`
	Answer   string    `bson:"ai"`
	AskedAt  time.Time `bson:"asked_at"`
}

func (r *ChatHistoryRepository) Insert(ctx context.Context, exchange *ports.ChatExchange) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoChatExchange{
		Question: exchange.Question,
		Answer:   exchange.Answer,
		AskedAt:  exchange.AskedAt,
	}
	_, err := r.coll.InsertOne(ctx, doc)
	return err
}

func (r *ChatHistoryRepository) ListAll(ctx context.Context) ([]*ports.ChatExchange, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "asked_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list chat history: %w", err)
	}
	defer cursor.Close(ctx)

	history := []*ports.ChatExchange{}
	for cursor.Next(ctx) {
		var mc mongoChatExchange
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode chat exchange: %w", err)
		}
		history = append(history, &ports.ChatExchange{
			Question: mc.Question,
			Answer:   mc.Answer,
			AskedAt:  mc.AskedAt,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list chat history: %w", err)
	}

	return history, nil
}
