package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/models"
)

type mongoContacts struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func (s *mongoContacts) Insert(ctx context.Context, m models.ContactMessage) (InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	res, err := s.collection.InsertOne(ctx, m)
	if err != nil {
		return InsertResult{}, err
	}
	return insertResultOf(res), nil
}
