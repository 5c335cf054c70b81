package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/models"
)

type mongoUsers struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func (s *mongoUsers) All(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *mongoUsers) ByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *mongoUsers) Instructors(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.collection.Find(ctx, bson.M{"role": models.RoleInstructor})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *mongoUsers) Insert(ctx context.Context, u models.User) (InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	res, err := s.collection.InsertOne(ctx, u)
	if err != nil {
		return InsertResult{}, err
	}
	return insertResultOf(res), nil
}

func (s *mongoUsers) SetRole(ctx context.Context, id string, role models.Role) (UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateResult{}, ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{
		"$set": bson.M{"role": role},
	})
	if err != nil {
		return UpdateResult{}, err
	}
	return updateResultOf(res), nil
}

func (s *mongoUsers) RoleByEmail(ctx context.Context, email string) (models.Role, error) {
	user, err := s.ByEmail(ctx, email)
	if err != nil {
		return models.RoleNone, err
	}
	if user == nil {
		return models.RoleNone, nil
	}
	return user.Role, nil
}

func insertResultOf(res *mongo.InsertOneResult) InsertResult {
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return InsertResult{}
	}
	return InsertResult{InsertedID: id.Hex()}
}

func updateResultOf(res *mongo.UpdateResult) UpdateResult {
	return UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
}
