package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/quizmaster/quizmaster-api/internal/model"
)

// QuizRepository defines the interface for quiz catalog operations.
type QuizRepository interface {
	CreateQuiz(ctx context.Context, quiz *model.Quiz) (*model.Quiz, error)
	CreateQuizzes(ctx context.Context, quizzes []*model.Quiz) error
	GetQuiz(ctx context.Context, id string) (*model.Quiz, error)
	ListQuizzes(ctx context.Context, params FilterQuizzesParams) ([]*model.Quiz, error)
	UpdateQuiz(ctx context.Context, id string, params UpdateQuizParams) (*model.Quiz, error)
	DeleteQuiz(ctx context.Context, id string) (*model.Quiz, error)
	CountQuizzes(ctx context.Context, params FilterQuizzesParams) (int64, error)
}

// FilterQuizzesParams defines the parameters for filtering quizzes.
type FilterQuizzesParams struct {
	Status *string
}

// UpdateQuizParams defines the optional parameters for updating a quiz.
// Only the fields that are not nil will be updated, so an explicit empty
// string clears a field while an absent one leaves it untouched.
type UpdateQuizParams struct {
	Title          *string
	Description    *string
	Category       *string
	Difficulty     *string
	Duration       *int
	TotalQuestions *int
	PassingScore   *int
	StartDate      *time.Time
	Status         *string
}

const quizCollection = "quizzes"

type quizMongoRepository struct {
	db *mongo.Database
}

// NewQuizMongoRepository creates the quiz repository and ensures the
// text search index over title and description.
func NewQuizMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) QuizRepository {
	collection := db.Collection(quizCollection)

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "title", Value: "text"}, {Key: "description", Value: "text"}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Error().Err(err).Msg("failed to create quiz indexes")
	}

	return &quizMongoRepository{db: db}
}

func (r *quizMongoRepository) CreateQuiz(ctx context.Context, quiz *model.Quiz) (*model.Quiz, error) {
	now := time.Now()
	quiz.CreatedAt = now
	quiz.UpdatedAt = now

	result, err := r.db.Collection(quizCollection).InsertOne(ctx, quiz)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		quiz.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return quiz, nil
}

func (r *quizMongoRepository) CreateQuizzes(ctx context.Context, quizzes []*model.Quiz) error {
	now := time.Now()
	docs := make([]any, 0, len(quizzes))
	for _, quiz := range quizzes {
		quiz.CreatedAt = now
		quiz.UpdatedAt = now
		docs = append(docs, quiz)
	}

	_, err := r.db.Collection(quizCollection).InsertMany(ctx, docs)
	return err
}

func (r *quizMongoRepository) GetQuiz(ctx context.Context, id string) (*model.Quiz, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	result := r.db.Collection(quizCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var quiz model.Quiz
	if err := result.Decode(&quiz); err != nil {
		return nil, err
	}

	return &quiz, nil
}

func (r *quizMongoRepository) ListQuizzes(ctx context.Context, params FilterQuizzesParams) ([]*model.Quiz, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection(quizCollection).Find(ctx, quizFilter(params), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	quizzes := []*model.Quiz{}
	for cursor.Next(ctx) {
		var quiz model.Quiz
		if err := cursor.Decode(&quiz); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, &quiz)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return quizzes, nil
}

func (r *quizMongoRepository) UpdateQuiz(
	ctx context.Context,
	id string,
	params UpdateQuizParams,
) (*model.Quiz, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	updateMap := bson.M{}
	if params.Title != nil {
		updateMap["title"] = *params.Title
	}
	if params.Description != nil {
		updateMap["description"] = *params.Description
	}
	if params.Category != nil {
		updateMap["category"] = *params.Category
	}
	if params.Difficulty != nil {
		updateMap["difficulty"] = *params.Difficulty
	}
	if params.Duration != nil {
		updateMap["duration"] = *params.Duration
	}
	if params.TotalQuestions != nil {
		updateMap["total_questions"] = *params.TotalQuestions
	}
	if params.PassingScore != nil {
		updateMap["passing_score"] = *params.PassingScore
	}
	if params.StartDate != nil {
		updateMap["start_date"] = *params.StartDate
	}
	if params.Status != nil {
		updateMap["status"] = *params.Status
	}

	// An all-nil params set still stamps updated_at, so an empty update
	// succeeds as a touch instead of failing.
	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(quizCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var quiz model.Quiz
	if err := result.Decode(&quiz); err != nil {
		return nil, err
	}

	return &quiz, nil
}

func (r *quizMongoRepository) DeleteQuiz(ctx context.Context, id string) (*model.Quiz, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	result := r.db.Collection(quizCollection).FindOneAndDelete(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var quiz model.Quiz
	if err := result.Decode(&quiz); err != nil {
		return nil, err
	}

	return &quiz, nil
}

func (r *quizMongoRepository) CountQuizzes(ctx context.Context, params FilterQuizzesParams) (int64, error) {
	return r.db.Collection(quizCollection).CountDocuments(ctx, quizFilter(params))
}

func quizFilter(params FilterQuizzesParams) bson.M {
	filter := bson.M{}
	if params.Status != nil {
		filter["status"] = *params.Status
	}
	return filter
}
