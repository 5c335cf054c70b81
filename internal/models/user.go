package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleNone       Role = ""
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
)

// User is created on first registration and never deleted. Email is the
// unique key; the role field is only set by the promotion endpoints.
type User struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email"`
	Photo string             `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
	Role  Role               `json:"role,omitempty" bson:"role,omitempty"`
}
