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

// RegistrationRepository defines the interface for quiz registration
// operations.
type RegistrationRepository interface {
	CreateRegistration(ctx context.Context, registration *model.Registration) (*model.Registration, error)
	GetRegistrationByEmailAndQuiz(ctx context.Context, email, quizID string) (*model.Registration, error)
	ListRegistrations(ctx context.Context, params FilterRegistrationsParams) ([]*model.Registration, error)
	CountRegistrations(ctx context.Context) (int64, error)
}

// FilterRegistrationsParams defines the parameters for filtering and
// limiting registrations. Results are always newest-first.
type FilterRegistrationsParams struct {
	QuizID *string
	Limit  int64
}

const registrationCollection = "registrations"

type registrationMongoRepository struct {
	db *mongo.Database
}

// NewRegistrationMongoRepository creates the registration repository.
// The compound unique index on (email, quiz_id) is the authoritative
// guard for the one-registration-per-quiz invariant; the application
// pre-check is advisory only.
func NewRegistrationMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) RegistrationRepository {
	collection := db.Collection(registrationCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}, {Key: "quiz_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "quiz_id", Value: 1}},
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Error().Err(err).Msg("failed to create registration indexes")
	}

	return &registrationMongoRepository{db: db}
}

func (r *registrationMongoRepository) CreateRegistration(
	ctx context.Context,
	registration *model.Registration,
) (*model.Registration, error) {
	now := time.Now()
	registration.RegisteredAt = now
	registration.CreatedAt = now

	result, err := r.db.Collection(registrationCollection).InsertOne(ctx, registration)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		registration.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return registration, nil
}

func (r *registrationMongoRepository) GetRegistrationByEmailAndQuiz(
	ctx context.Context,
	email, quizID string,
) (*model.Registration, error) {
	result := r.db.Collection(registrationCollection).FindOne(ctx, bson.M{
		"email":   email,
		"quiz_id": quizID,
	})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var registration model.Registration
	if err := result.Decode(&registration); err != nil {
		return nil, err
	}

	return &registration, nil
}

func (r *registrationMongoRepository) ListRegistrations(
	ctx context.Context,
	params FilterRegistrationsParams,
) ([]*model.Registration, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "registered_at", Value: -1}})
	if params.Limit > 0 {
		findOptions.SetLimit(params.Limit)
	}

	filter := bson.M{}
	if params.QuizID != nil {
		filter["quiz_id"] = *params.QuizID
	}

	cursor, err := r.db.Collection(registrationCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	registrations := []*model.Registration{}
	for cursor.Next(ctx) {
		var registration model.Registration
		if err := cursor.Decode(&registration); err != nil {
			return nil, err
		}
		registrations = append(registrations, &registration)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return registrations, nil
}

func (r *registrationMongoRepository) CountRegistrations(ctx context.Context) (int64, error) {
	return r.db.Collection(registrationCollection).CountDocuments(ctx, bson.M{})
}
