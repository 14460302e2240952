package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// RegistrationStatusRegistered is the initial status of a registration.
const RegistrationStatusRegistered = "Registered"

// Registration links a person's contact identity to a specific quiz.
// Identity fields are copied from the submission rather than referencing
// an account, so unauthenticated visitors can register too. At most one
// registration may exist per (email, quiz_id) pair.
type Registration struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	FirstName    string        `bson:"first_name"`
	LastName     string        `bson:"last_name"`
	Email        string        `bson:"email"`
	Mobile       string        `bson:"mobile"`
	DateOfBirth  string        `bson:"date_of_birth,omitempty"`
	College      string        `bson:"college,omitempty"`
	Course       string        `bson:"course,omitempty"`
	Year         string        `bson:"year,omitempty"`
	QuizID       string        `bson:"quiz_id"`
	Status       string        `bson:"status"`
	RegisteredAt time.Time     `bson:"registered_at"`
	CreatedAt    time.Time     `bson:"created_at"`
}
