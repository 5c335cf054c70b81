// Package store wraps the MongoDB collections behind per-resource
// interfaces so handlers depend on operations, not on the driver.
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/models"
)

var ErrInvalidID = errors.New("invalid document id")

// Result shapes mirror what the driver reports, in the form the API has
// always returned them to clients.
type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

type Users interface {
	All(ctx context.Context) ([]models.User, error)
	// ByEmail returns (nil, nil) when no user exists for the email.
	ByEmail(ctx context.Context, email string) (*models.User, error)
	Instructors(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, u models.User) (InsertResult, error)
	SetRole(ctx context.Context, id string, role models.Role) (UpdateResult, error)
	// RoleByEmail resolves the stored role for an identity claim. Absent
	// users and users with no role field both resolve to RoleNone. The
	// lookup always hits the store; roles are never cached.
	RoleByEmail(ctx context.Context, email string) (models.Role, error)
}

type Classes interface {
	All(ctx context.Context) ([]models.Class, error)
	Approved(ctx context.Context) ([]models.Class, error)
	// Popular lists approved classes by enrolled_students descending,
	// capped at limit. Ties keep the store's natural order.
	Popular(ctx context.Context, limit int64) ([]models.Class, error)
	ByInstructor(ctx context.Context, email string) ([]models.Class, error)
	Insert(ctx context.Context, c models.Class) (InsertResult, error)
	SetStatus(ctx context.Context, id string, status models.ClassStatus) (UpdateResult, error)
	SetFeedback(ctx context.Context, id, feedback string) (UpdateResult, error)
	IncrementEnrolled(ctx context.Context, id string, delta int) (UpdateResult, error)
}

type Carts interface {
	ByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	// ByID returns (nil, nil) when the item does not exist.
	ByID(ctx context.Context, id string) (*models.CartItem, error)
	Insert(ctx context.Context, item models.CartItem) (InsertResult, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
}

type Payments interface {
	ByEmail(ctx context.Context, email string) ([]models.Payment, error)
	Insert(ctx context.Context, p models.Payment) (InsertResult, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
}

type Contacts interface {
	Insert(ctx context.Context, m models.ContactMessage) (InsertResult, error)
}

// Store groups the Mongo-backed implementations over one injected client.
type Store struct {
	Users    Users
	Classes  Classes
	Carts    Carts
	Payments Payments
	Contacts Contacts
}

func New(client *mongo.Client, dbName string, timeout time.Duration) *Store {
	db := client.Database(dbName)
	return &Store{
		Users:    &mongoUsers{collection: db.Collection("users"), timeout: timeout},
		Classes:  &mongoClasses{collection: db.Collection("classes"), timeout: timeout},
		Carts:    &mongoCarts{collection: db.Collection("carts"), timeout: timeout},
		Payments: &mongoPayments{collection: db.Collection("payments"), timeout: timeout},
		Contacts: &mongoContacts{collection: db.Collection("contacts"), timeout: timeout},
	}
}
