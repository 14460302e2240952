package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Quiz difficulty levels accepted by the catalog.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// QuizStatusActive marks a quiz as open for registration. The persisted
// status field is the single source of truth for "active" filtering.
const QuizStatusActive = "Active"

// Quiz represents a schedulable assessment event.
type Quiz struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	Title          string        `bson:"title"`
	Description    string        `bson:"description"`
	Category       string        `bson:"category"`
	Difficulty     string        `bson:"difficulty"`
	Duration       int           `bson:"duration"`
	TotalQuestions int           `bson:"total_questions"`
	PassingScore   int           `bson:"passing_score"`
	StartDate      time.Time     `bson:"start_date"`
	Status         string        `bson:"status"`
	CreatedAt      time.Time     `bson:"created_at"`
	UpdatedAt      time.Time     `bson:"updated_at"`
}
