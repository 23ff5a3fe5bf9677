package redflags

import (
	"carehub-service/internal/app/contracts"
	"carehub-service/internal/app/models"
	"carehub-service/internal/pkg/constvars"
	"carehub-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RedFlagMongoRepository struct {
	Collection *mongo.Collection
}

func NewRedFlagMongoRepository(db *mongo.Client, dbName string) contracts.RedFlagRepository {
	return &RedFlagMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionRedFlags),
	}
}

func (repo *RedFlagMongoRepository) CreateRedFlag(ctx context.Context, redFlag *models.RedFlag) (string, error) {
	redFlag.ID = primitive.NewObjectID().Hex()
	_, err := repo.Collection.InsertOne(ctx, redFlag)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return redFlag.ID, nil
}

func (repo *RedFlagMongoRepository) FindByID(ctx context.Context, redFlagID string) (*models.RedFlag, error) {
	var redFlag models.RedFlag
	err := repo.Collection.FindOne(ctx, bson.M{"_id": redFlagID}).Decode(&redFlag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &redFlag, nil
}

func (repo *RedFlagMongoRepository) FindByIDAndMemberID(ctx context.Context, redFlagID, memberID string) (*models.RedFlag, error) {
	var redFlag models.RedFlag
	err := repo.Collection.FindOne(ctx, bson.M{"_id": redFlagID, "memberId": memberID}).Decode(&redFlag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &redFlag, nil
}

func (repo *RedFlagMongoRepository) FindByMemberID(ctx context.Context, memberID string) ([]models.RedFlag, error) {
	redFlags := []models.RedFlag{}
	cursor, err := repo.Collection.Find(ctx, bson.M{"memberId": memberID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &redFlags)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return redFlags, nil
}

func (repo *RedFlagMongoRepository) UpdateRedFlag(ctx context.Context, redFlag *models.RedFlag) error {
	update := bson.M{"$set": bson.M{
		"notes":     redFlag.Notes,
		"status":    redFlag.Status,
		"updatedAt": redFlag.UpdatedAt,
	}}
	_, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": redFlag.ID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *RedFlagMongoRepository) DeleteByMemberID(ctx context.Context, memberID string) error {
	_, err := repo.Collection.DeleteMany(ctx, bson.M{"memberId": memberID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
