package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClassStatus string

const (
	StatusPending  ClassStatus = "pending"
	StatusApproved ClassStatus = "approved"
	StatusDenied   ClassStatus = "denied"
)

type Class struct {
	ID               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Image            string             `json:"image,omitempty" bson:"image,omitempty"`
	InstructorName   string             `json:"instructorName" bson:"instructorName"`
	InstructorEmail  string             `json:"instructorEmail" bson:"instructorEmail"`
	AvailableSeats   int                `json:"availableSeats" bson:"availableSeats"`
	Price            float64            `json:"price" bson:"price"`
	Description      string             `json:"description,omitempty" bson:"description,omitempty"`
	Status           ClassStatus        `json:"status" bson:"status"`
	EnrolledStudents int                `json:"enrolled_students" bson:"enrolled_students"`
	Feedback         string             `json:"feedback,omitempty" bson:"feedback,omitempty"`
}
