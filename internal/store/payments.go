package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/models"
)

type mongoPayments struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func (s *mongoPayments) ByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *mongoPayments) Insert(ctx context.Context, p models.Payment) (InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	res, err := s.collection.InsertOne(ctx, p)
	if err != nil {
		return InsertResult{}, err
	}
	return insertResultOf(res), nil
}

func (s *mongoPayments) Delete(ctx context.Context, id string) (DeleteResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return DeleteResult{}, ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{DeletedCount: res.DeletedCount}, nil
}
