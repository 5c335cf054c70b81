package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/models"
)

type mongoClasses struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func (s *mongoClasses) All(ctx context.Context) ([]models.Class, error) {
	return s.find(ctx, bson.M{}, nil)
}

func (s *mongoClasses) Approved(ctx context.Context) ([]models.Class, error) {
	return s.find(ctx, bson.M{"status": models.StatusApproved}, nil)
}

func (s *mongoClasses) Popular(ctx context.Context, limit int64) ([]models.Class, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "enrolled_students", Value: -1}}).
		SetLimit(limit)
	return s.find(ctx, bson.M{"status": models.StatusApproved}, opts)
}

func (s *mongoClasses) ByInstructor(ctx context.Context, email string) ([]models.Class, error) {
	return s.find(ctx, bson.M{"instructorEmail": email}, nil)
}

func (s *mongoClasses) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = s.collection.Find(ctx, filter, opts)
	} else {
		cursor, err = s.collection.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var classes []models.Class
	if err = cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (s *mongoClasses) Insert(ctx context.Context, c models.Class) (InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	res, err := s.collection.InsertOne(ctx, c)
	if err != nil {
		return InsertResult{}, err
	}
	return insertResultOf(res), nil
}

func (s *mongoClasses) SetStatus(ctx context.Context, id string, status models.ClassStatus) (UpdateResult, error) {
	return s.setFields(ctx, id, bson.M{"status": status})
}

func (s *mongoClasses) SetFeedback(ctx context.Context, id, feedback string) (UpdateResult, error) {
	return s.setFields(ctx, id, bson.M{"feedback": feedback})
}

func (s *mongoClasses) setFields(ctx context.Context, id string, fields bson.M) (UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateResult{}, ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": fields})
	if err != nil {
		return UpdateResult{}, err
	}
	return updateResultOf(res), nil
}

func (s *mongoClasses) IncrementEnrolled(ctx context.Context, id string, delta int) (UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateResult{}, ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{
		"$inc": bson.M{"enrolled_students": delta},
	})
	if err != nil {
		return UpdateResult{}, err
	}
	return updateResultOf(res), nil
}
