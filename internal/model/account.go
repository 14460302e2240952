package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Student represents a student account. Students and admins live in
// separate collections, each with its own unique email index.
type Student struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	FirstName    string        `bson:"first_name"`
	LastName     string        `bson:"last_name"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password_hash"`
	Mobile       string        `bson:"mobile"`
	DateOfBirth  string        `bson:"date_of_birth,omitempty"`
	College      string        `bson:"college,omitempty"`
	Course       string        `bson:"course,omitempty"`
	Year         string        `bson:"year,omitempty"`
	Role         string        `bson:"role"`
	CreatedAt    time.Time     `bson:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at"`
}

// Admin represents an administrator account.
type Admin struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Name         string        `bson:"name"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password_hash"`
	Department   string        `bson:"department,omitempty"`
	Role         string        `bson:"role"`
	Status       string        `bson:"status"`
	CreatedAt    time.Time     `bson:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at"`
}
