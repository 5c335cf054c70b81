package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/models"
)

type mongoCarts struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func (s *mongoCarts) ByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.CartItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *mongoCarts) ByID(ctx context.Context, id string) (*models.CartItem, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var item models.CartItem
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *mongoCarts) Insert(ctx context.Context, item models.CartItem) (InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	res, err := s.collection.InsertOne(ctx, item)
	if err != nil {
		return InsertResult{}, err
	}
	return insertResultOf(res), nil
}

func (s *mongoCarts) Delete(ctx context.Context, id string) (DeleteResult, error) {
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
