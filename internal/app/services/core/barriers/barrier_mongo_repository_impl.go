package barriers

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

type BarrierMongoRepository struct {
	Collection *mongo.Collection
}

func NewBarrierMongoRepository(db *mongo.Client, dbName string) contracts.BarrierRepository {
	return &BarrierMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBarriers),
	}
}

func (repo *BarrierMongoRepository) CreateBarrier(ctx context.Context, barrier *models.Barrier) (string, error) {
	barrier.ID = primitive.NewObjectID().Hex()
	_, err := repo.Collection.InsertOne(ctx, barrier)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return barrier.ID, nil
}

func (repo *BarrierMongoRepository) FindByID(ctx context.Context, barrierID string) (*models.Barrier, error) {
	var barrier models.Barrier
	err := repo.Collection.FindOne(ctx, bson.M{"_id": barrierID}).Decode(&barrier)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &barrier, nil
}

func (repo *BarrierMongoRepository) FindByIDAndMemberID(ctx context.Context, barrierID, memberID string) (*models.Barrier, error) {
	var barrier models.Barrier
	err := repo.Collection.FindOne(ctx, bson.M{"_id": barrierID, "memberId": memberID}).Decode(&barrier)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &barrier, nil
}

func (repo *BarrierMongoRepository) FindByMemberID(ctx context.Context, memberID string) ([]models.Barrier, error) {
	barriers := []models.Barrier{}
	cursor, err := repo.Collection.Find(ctx, bson.M{"memberId": memberID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &barriers)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return barriers, nil
}

func (repo *BarrierMongoRepository) UpdateBarrier(ctx context.Context, barrier *models.Barrier) error {
	update := bson.M{"$set": bson.M{
		"notes":     barrier.Notes,
		"status":    barrier.Status,
		"updatedAt": barrier.UpdatedAt,
	}}
	_, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": barrier.ID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *BarrierMongoRepository) DeleteByMemberID(ctx context.Context, memberID string) error {
	_, err := repo.Collection.DeleteMany(ctx, bson.M{"memberId": memberID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
