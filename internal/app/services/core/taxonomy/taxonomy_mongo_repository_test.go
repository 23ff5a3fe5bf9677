package taxonomy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// Taxonomy ids are hex strings end to end: the seeder writes them, the
// lookups filter on them, and the custom-type upsert inserts them. These
// tests pin that representation at the command level so a typed ObjectID
// cannot sneak back into one of the three places.

func TestFindTaxonomyTypeByIDFiltersByStringID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("red flag type seeded as string id is found", func(mt *mtest.T) {
		repo := &TaxonomyMongoRepository{RedFlagTypeCollection: mt.Coll}
		typeID := primitive.NewObjectID().Hex()
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: typeID},
			{Key: "description", Value: "Recent hospital discharge"},
		}))

		redFlagType, err := repo.FindRedFlagTypeByID(context.Background(), typeID)
		assert.NoError(mt, err)
		if assert.NotNil(mt, redFlagType) {
			assert.Equal(mt, typeID, redFlagType.ID)
		}

		started := mt.GetStartedEvent()
		assert.Equal(mt, "find", started.CommandName)
		filterID := started.Command.Lookup("filter", "_id")
		assert.Equal(mt, bsontype.String, filterID.Type)
		value, _ := filterID.StringValueOK()
		assert.Equal(mt, typeID, value)
	})

	mt.Run("barrier type decodes the seeded shape", func(mt *mtest.T) {
		repo := &TaxonomyMongoRepository{BarrierTypeCollection: mt.Coll}
		typeID := primitive.NewObjectID().Hex()
		planTypeID := primitive.NewObjectID().Hex()
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: typeID},
			{Key: "description", Value: "No reliable transportation"},
			{Key: "domain", Value: "transportation"},
			{Key: "carePlanTypeIds", Value: bson.A{planTypeID}},
		}))

		barrierType, err := repo.FindBarrierTypeByID(context.Background(), typeID)
		assert.NoError(mt, err)
		if assert.NotNil(mt, barrierType) {
			assert.Equal(mt, typeID, barrierType.ID)
			assert.Equal(mt, "transportation", barrierType.Domain)
			assert.Equal(mt, []string{planTypeID}, barrierType.CarePlanTypeIDs)
		}

		started := mt.GetStartedEvent()
		filterID := started.Command.Lookup("filter", "_id")
		assert.Equal(mt, bsontype.String, filterID.Type)
	})

	mt.Run("care plan type seeded as string id is found", func(mt *mtest.T) {
		repo := &TaxonomyMongoRepository{CarePlanTypeCollection: mt.Coll}
		typeID := primitive.NewObjectID().Hex()
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: typeID},
			{Key: "description", Value: "Arrange transport voucher"},
			{Key: "isCustom", Value: false},
		}))

		carePlanType, err := repo.FindCarePlanTypeByID(context.Background(), typeID)
		assert.NoError(mt, err)
		if assert.NotNil(mt, carePlanType) {
			assert.Equal(mt, typeID, carePlanType.ID)
			assert.False(mt, carePlanType.IsCustom)
		}

		started := mt.GetStartedEvent()
		filterID := started.Command.Lookup("filter", "_id")
		assert.Equal(mt, bsontype.String, filterID.Type)
	})

	mt.Run("missing entry returns nil without error", func(mt *mtest.T) {
		repo := &TaxonomyMongoRepository{CarePlanTypeCollection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		carePlanType, err := repo.FindCarePlanTypeByID(context.Background(), primitive.NewObjectID().Hex())
		assert.NoError(mt, err)
		assert.Nil(mt, carePlanType)
	})
}

func TestUpsertCustomCarePlanTypeInsertsStringID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("setOnInsert carries a hex string id", func(mt *mtest.T) {
		repo := &TaxonomyMongoRepository{CarePlanTypeCollection: mt.Coll}
		typeID := primitive.NewObjectID().Hex()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: bson.D{
				{Key: "_id", Value: typeID},
				{Key: "description", Value: "Weekly phone call"},
				{Key: "isCustom", Value: true},
			}},
		))

		carePlanType, err := repo.UpsertCustomCarePlanType(context.Background(), "Weekly phone call")
		assert.NoError(mt, err)
		if assert.NotNil(mt, carePlanType) {
			assert.Equal(mt, typeID, carePlanType.ID)
			assert.True(mt, carePlanType.IsCustom)
		}

		started := mt.GetStartedEvent()
		assert.Equal(mt, "findAndModify", started.CommandName)
		insertID := started.Command.Lookup("update", "$setOnInsert", "_id")
		assert.Equal(mt, bsontype.String, insertID.Type)
	})
}
