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

// AdminRepository defines the interface for admin account operations.
type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin *model.Admin) (*model.Admin, error)
	GetAdmin(ctx context.Context, id string) (*model.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error)
	UpdateAdmin(ctx context.Context, id string, params UpdateAdminParams) (*model.Admin, error)
	CountAdmins(ctx context.Context) (int64, error)
}

// UpdateAdminParams defines the optional parameters for updating an
// admin. Only the fields that are not nil will be updated.
type UpdateAdminParams struct {
	PasswordHash *string
	Status       *string
}

const adminCollection = "admin_users"

type adminMongoRepository struct {
	db *mongo.Database
}

// NewAdminMongoRepository creates the admin repository and ensures the
// unique email index. Admins have their own uniqueness scope, separate
// from students.
func NewAdminMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) AdminRepository {
	collection := db.Collection(adminCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Error().Err(err).Msg("failed to create admin indexes")
	}

	return &adminMongoRepository{db: db}
}

func (r *adminMongoRepository) CreateAdmin(ctx context.Context, admin *model.Admin) (*model.Admin, error) {
	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	result, err := r.db.Collection(adminCollection).InsertOne(ctx, admin)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		admin.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return admin, nil
}

func (r *adminMongoRepository) GetAdmin(ctx context.Context, id string) (*model.Admin, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	result := r.db.Collection(adminCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var admin model.Admin
	if err := result.Decode(&admin); err != nil {
		return nil, err
	}

	return &admin, nil
}

func (r *adminMongoRepository) GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	result := r.db.Collection(adminCollection).FindOne(ctx, bson.M{"email": email})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var admin model.Admin
	if err := result.Decode(&admin); err != nil {
		return nil, err
	}

	return &admin, nil
}

func (r *adminMongoRepository) UpdateAdmin(
	ctx context.Context,
	id string,
	params UpdateAdminParams,
) (*model.Admin, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	updateMap := bson.M{}
	if params.PasswordHash != nil {
		updateMap["password_hash"] = *params.PasswordHash
	}
	if params.Status != nil {
		updateMap["status"] = *params.Status
	}

	if len(updateMap) == 0 {
		return nil, errors.New("no admin fields to update")
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(adminCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var admin model.Admin
	if err := result.Decode(&admin); err != nil {
		return nil, err
	}

	return &admin, nil
}

func (r *adminMongoRepository) CountAdmins(ctx context.Context) (int64, error) {
	return r.db.Collection(adminCollection).CountDocuments(ctx, bson.M{})
}
