package taxonomy

import (
	"carehub-service/internal/app/contracts"
	"carehub-service/internal/app/models"
	"carehub-service/internal/pkg/constvars"
	"carehub-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TaxonomyMongoRepository struct {
	RedFlagTypeCollection  *mongo.Collection
	BarrierTypeCollection  *mongo.Collection
	CarePlanTypeCollection *mongo.Collection
}

func NewTaxonomyMongoRepository(db *mongo.Client, dbName string) contracts.TaxonomyRepository {
	return &TaxonomyMongoRepository{
		RedFlagTypeCollection:  db.Database(dbName).Collection(constvars.MongoCollectionRedFlagTypes),
		BarrierTypeCollection:  db.Database(dbName).Collection(constvars.MongoCollectionBarrierTypes),
		CarePlanTypeCollection: db.Database(dbName).Collection(constvars.MongoCollectionCarePlanTypes),
	}
}

func (repo *TaxonomyMongoRepository) FindAllRedFlagTypes(ctx context.Context) ([]models.RedFlagType, error) {
	var types []models.RedFlagType
	cursor, err := repo.RedFlagTypeCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &types)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return types, nil
}

func (repo *TaxonomyMongoRepository) FindRedFlagTypeByID(ctx context.Context, typeID string) (*models.RedFlagType, error) {
	var redFlagType models.RedFlagType
	err := repo.RedFlagTypeCollection.FindOne(ctx, bson.M{"_id": typeID}).Decode(&redFlagType)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &redFlagType, nil
}

func (repo *TaxonomyMongoRepository) FindAllBarrierTypes(ctx context.Context) ([]models.BarrierType, error) {
	var types []models.BarrierType
	cursor, err := repo.BarrierTypeCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &types)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return types, nil
}

func (repo *TaxonomyMongoRepository) FindBarrierTypeByID(ctx context.Context, typeID string) (*models.BarrierType, error) {
	var barrierType models.BarrierType
	err := repo.BarrierTypeCollection.FindOne(ctx, bson.M{"_id": typeID}).Decode(&barrierType)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &barrierType, nil
}

func (repo *TaxonomyMongoRepository) FindAllCarePlanTypes(ctx context.Context) ([]models.CarePlanType, error) {
	var types []models.CarePlanType
	cursor, err := repo.CarePlanTypeCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &types)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return types, nil
}

func (repo *TaxonomyMongoRepository) FindCarePlanTypeByID(ctx context.Context, typeID string) (*models.CarePlanType, error) {
	var carePlanType models.CarePlanType
	err := repo.CarePlanTypeCollection.FindOne(ctx, bson.M{"_id": typeID}).Decode(&carePlanType)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &carePlanType, nil
}

// UpsertCustomCarePlanType relies on the unique index on description:
// the filter matches any entry with the exact description, $setOnInsert
// only fires when none exists, so concurrent identical submissions
// converge on a single catalog entry. A duplicate key error can still
// surface when two inserts race past the filter; the loser re-reads.
// Ids are stored as hex strings, the same representation the seeder and
// the entity repositories use.
func (repo *TaxonomyMongoRepository) UpsertCustomCarePlanType(ctx context.Context, description string) (*models.CarePlanType, error) {
	filter := bson.M{"description": description}
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":         primitive.NewObjectID().Hex(),
			"description": description,
			"isCustom":    true,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var carePlanType models.CarePlanType
	err := repo.CarePlanTypeCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&carePlanType)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			findErr := repo.CarePlanTypeCollection.FindOne(ctx, filter).Decode(&carePlanType)
			if findErr != nil {
				return nil, exceptions.ErrMongoDBFindDocument(findErr)
			}
			return &carePlanType, nil
		}
		return nil, exceptions.ErrMongoDBUpsertDocument(err)
	}
	return &carePlanType, nil
}
