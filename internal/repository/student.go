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

// StudentRepository defines the interface for student account operations.
type StudentRepository interface {
	CreateStudent(ctx context.Context, student *model.Student) (*model.Student, error)
	GetStudent(ctx context.Context, id string) (*model.Student, error)
	GetStudentByEmail(ctx context.Context, email string) (*model.Student, error)
	UpdateStudent(ctx context.Context, id string, params UpdateStudentParams) (*model.Student, error)
}

// UpdateStudentParams defines the optional parameters for updating a
// student. Only the fields that are not nil will be updated.
type UpdateStudentParams struct {
	PasswordHash *string
}

const studentCollection = "students"

type studentMongoRepository struct {
	db *mongo.Database
}

// NewStudentMongoRepository creates the student repository and ensures
// the unique email index. An index failure is logged rather than fatal
// so the service can come up and report the store as unavailable.
func NewStudentMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) StudentRepository {
	collection := db.Collection(studentCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Error().Err(err).Msg("failed to create student indexes")
	}

	return &studentMongoRepository{db: db}
}

func (r *studentMongoRepository) CreateStudent(ctx context.Context, student *model.Student) (*model.Student, error) {
	now := time.Now()
	student.CreatedAt = now
	student.UpdatedAt = now

	result, err := r.db.Collection(studentCollection).InsertOne(ctx, student)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		student.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return student, nil
}

func (r *studentMongoRepository) GetStudent(ctx context.Context, id string) (*model.Student, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	result := r.db.Collection(studentCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var student model.Student
	if err := result.Decode(&student); err != nil {
		return nil, err
	}

	return &student, nil
}

func (r *studentMongoRepository) GetStudentByEmail(ctx context.Context, email string) (*model.Student, error) {
	result := r.db.Collection(studentCollection).FindOne(ctx, bson.M{"email": email})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var student model.Student
	if err := result.Decode(&student); err != nil {
		return nil, err
	}

	return &student, nil
}

func (r *studentMongoRepository) UpdateStudent(
	ctx context.Context,
	id string,
	params UpdateStudentParams,
) (*model.Student, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	updateMap := bson.M{}
	if params.PasswordHash != nil {
		updateMap["password_hash"] = *params.PasswordHash
	}

	if len(updateMap) == 0 {
		return nil, errors.New("no student fields to update")
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(studentCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var student model.Student
	if err := result.Decode(&student); err != nil {
		return nil, err
	}

	return &student, nil
}
