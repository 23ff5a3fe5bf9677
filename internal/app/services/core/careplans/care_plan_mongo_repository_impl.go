package careplans

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

type CarePlanMongoRepository struct {
	Collection *mongo.Collection
}

func NewCarePlanMongoRepository(db *mongo.Client, dbName string) contracts.CarePlanRepository {
	return &CarePlanMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCarePlans),
	}
}

func (repo *CarePlanMongoRepository) CreateCarePlan(ctx context.Context, carePlan *models.CarePlan) (string, error) {
	carePlan.ID = primitive.NewObjectID().Hex()
	_, err := repo.Collection.InsertOne(ctx, carePlan)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return carePlan.ID, nil
}

func (repo *CarePlanMongoRepository) FindByID(ctx context.Context, carePlanID string) (*models.CarePlan, error) {
	var carePlan models.CarePlan
	err := repo.Collection.FindOne(ctx, bson.M{"_id": carePlanID}).Decode(&carePlan)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &carePlan, nil
}

func (repo *CarePlanMongoRepository) FindByMemberID(ctx context.Context, memberID string) ([]models.CarePlan, error) {
	carePlans := []models.CarePlan{}
	cursor, err := repo.Collection.Find(ctx, bson.M{"memberId": memberID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &carePlans)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return carePlans, nil
}

func (repo *CarePlanMongoRepository) UpdateCarePlan(ctx context.Context, carePlan *models.CarePlan) error {
	update := bson.M{"$set": bson.M{
		"notes":     carePlan.Notes,
		"status":    carePlan.Status,
		"dueDate":   carePlan.DueDate,
		"updatedAt": carePlan.UpdatedAt,
	}}
	_, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": carePlan.ID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *CarePlanMongoRepository) DeleteByID(ctx context.Context, carePlanID string) (bool, error) {
	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": carePlanID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}

func (repo *CarePlanMongoRepository) DeleteByMemberID(ctx context.Context, memberID string) error {
	_, err := repo.Collection.DeleteMany(ctx, bson.M{"memberId": memberID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
