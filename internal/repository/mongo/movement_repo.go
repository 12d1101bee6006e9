package mongo

import (
	"alcyxob/wodbook/internal/domain"
	"alcyxob/wodbook/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	movementCollectionName      = "movements"
	movementScoreCollectionName = "movement_scores"
)

// mongoMovementRepository implements repository.MovementRepository
type mongoMovementRepository struct {
	collection *mongo.Collection
	scores     *mongo.Collection
}

// NewMongoMovementRepository creates a new Movement repository backed by MongoDB.
func NewMongoMovementRepository(db *mongo.Database) repository.MovementRepository {
	return &mongoMovementRepository{
		collection: db.Collection(movementCollectionName),
		scores:     db.Collection(movementScoreCollectionName),
	}
}

// Create inserts a new movement. Duplicate names for one user yield repository.ErrConflict.
func (r *mongoMovementRepository) Create(ctx context.Context, movement *domain.Movement) (primitive.ObjectID, error) {
	if movement.Name == "" || movement.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("movement name and user ID are required")
	}

	movement.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	movement.CreatedAt = now
	movement.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, movement)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrConflict
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByUserID retrieves all movements owned by a user, sorted by name.
func (r *mongoMovementRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Movement, error) {
	var movements []domain.Movement
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &movements); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return movements, nil
}

// AddScore inserts a score for an existing movement.
func (r *mongoMovementRepository) AddScore(ctx context.Context, score *domain.MovementScore) (primitive.ObjectID, error) {
	if score.MovementID == primitive.NilObjectID || score.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("movement score requires movementId and userId")
	}
	score.ID = primitive.NewObjectID()
	if score.CreatedAt.IsZero() {
		score.CreatedAt = time.Now().UTC()
	}

	result, err := r.scores.InsertOne(ctx, score)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted movement score ID")
	}
	return insertedID, nil
}

// EnsureMovementIndexes creates necessary indexes for movements and their scores.
func EnsureMovementIndexes(ctx context.Context, db *mongo.Database) error {
	movementIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection(movementCollectionName).Indexes().CreateMany(ctx, movementIndexes); err != nil {
		return err
	}

	scoreIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "movementId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}
	_, err := db.Collection(movementScoreCollectionName).Indexes().CreateMany(ctx, scoreIndexes)
	return err
}
