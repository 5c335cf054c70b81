package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is written exactly once per settlement and never mutated.
type Payment struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"`
	TransactionID string             `json:"transactionId" bson:"transactionId"`
	Amount        float64            `json:"amount" bson:"amount"`
	CartID        primitive.ObjectID `json:"cartId" bson:"cartId"`
	ClassID       primitive.ObjectID `json:"classId" bson:"classId"`
	Date          time.Time          `json:"date" bson:"date"`
}
