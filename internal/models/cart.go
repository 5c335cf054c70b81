package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a class a learner intends to buy. It is deleted either by an
// explicit remove or implicitly when the purchase settles.
type CartItem struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email          string             `json:"email" bson:"email"`
	ClassID        primitive.ObjectID `json:"classId" bson:"classId"`
	Name           string             `json:"name" bson:"name"`
	Image          string             `json:"image,omitempty" bson:"image,omitempty"`
	Price          float64            `json:"price" bson:"price"`
	InstructorName string             `json:"instructorName,omitempty" bson:"instructorName,omitempty"`
}
