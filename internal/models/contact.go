package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactMessage struct {
	ID      primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name    string             `json:"name" bson:"name"`
	Email   string             `json:"email" bson:"email"`
	Subject string             `json:"subject,omitempty" bson:"subject,omitempty"`
	Message string             `json:"message" bson:"message"`
	SentAt  time.Time          `json:"sent_at" bson:"sent_at"`
}
