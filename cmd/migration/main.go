package main

import (
	"carehub-service/internal/app/config"
	"carehub-service/internal/app/drivers/database"
	"carehub-service/internal/app/drivers/logger"
	"carehub-service/internal/app/services/shared/locker"
	"carehub-service/internal/app/services/shared/redis"
	"carehub-service/internal/pkg/constvars"
	"carehub-service/internal/pkg/utils"
	"context"
	"log"
	"os"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const seedLockKey = "migration:taxonomy_seed"

type taxonomySeed struct {
	RedFlagTypes  []seedRedFlagType  `json:"redFlagTypes"`
	CarePlanTypes []seedCarePlanType `json:"carePlanTypes"`
	BarrierTypes  []seedBarrierType  `json:"barrierTypes"`
}

type seedRedFlagType struct {
	Description string `json:"description"`
}

type seedCarePlanType struct {
	Description string `json:"description"`
}

type seedBarrierType struct {
	Description string `json:"description"`
	Domain      string `json:"domain"`
	// Care plan types are referenced by description so the seed file
	// stays readable; ids are resolved after the care plan types land.
	CarePlanTypeDescriptions []string `json:"carePlanTypeDescriptions"`
}

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	seedFile := utils.GetEnvString("TAXONOMY_SEED_FILE", "internal/migration/taxonomy_seed.json")
	raw, err := os.ReadFile(seedFile)
	if err != nil {
		log.Fatalf("Error reading seed file %s: %v", seedFile, err)
	}

	var seed taxonomySeed
	err = json.Unmarshal(raw, &seed)
	if err != nil {
		log.Fatalf("Error parsing seed file %s: %v", seedFile, err)
	}

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)

	redisRepository := redis.NewRedisRepository(redisClient)
	lockService := locker.NewLockService(redisRepository, zapLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Only one seeder may run at a time across deployments.
	acquired, lockValue, err := lockService.TryLock(ctx, seedLockKey, 5*time.Minute)
	if err != nil {
		log.Fatalf("Error acquiring seed lock: %v", err)
	}
	if !acquired {
		log.Println("Another seeder holds the lock, nothing to do")
		return
	}
	defer lockService.Unlock(ctx, seedLockKey, lockValue)

	db := mongoDB.Database(driverConfig.MongoDB.DbName)

	err = ensureCarePlanTypeIndex(ctx, db)
	if err != nil {
		log.Fatalf("Error creating care plan type index: %v", err)
	}

	err = seedRedFlagTypes(ctx, db, seed.RedFlagTypes)
	if err != nil {
		log.Fatalf("Error seeding red flag types: %v", err)
	}

	carePlanTypeIDs, err := seedCarePlanTypes(ctx, db, seed.CarePlanTypes)
	if err != nil {
		log.Fatalf("Error seeding care plan types: %v", err)
	}

	err = seedBarrierTypes(ctx, db, seed.BarrierTypes, carePlanTypeIDs)
	if err != nil {
		log.Fatalf("Error seeding barrier types: %v", err)
	}

	// Cached lists are stale after a reseed.
	for _, key := range []string{
		constvars.RedisKeyRedFlagTypeList,
		constvars.RedisKeyBarrierTypeList,
		constvars.RedisKeyCarePlanTypeList,
	} {
		err = redisRepository.Delete(ctx, key)
		if err != nil {
			log.Fatalf("Error invalidating cache key %s: %v", key, err)
		}
	}

	log.Printf("Seeded %d red flag types, %d care plan types, %d barrier types\n",
		len(seed.RedFlagTypes), len(seed.CarePlanTypes), len(seed.BarrierTypes))
}

// ensureCarePlanTypeIndex backs the atomic find-or-create of custom care
// plan types with a unique constraint on description.
func ensureCarePlanTypeIndex(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(constvars.MongoCollectionCarePlanTypes).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "description", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func seedRedFlagTypes(ctx context.Context, db *mongo.Database, types []seedRedFlagType) error {
	collection := db.Collection(constvars.MongoCollectionRedFlagTypes)
	for _, eachType := range types {
		update := bson.M{"$setOnInsert": bson.M{
			"_id":         primitive.NewObjectID().Hex(),
			"description": eachType.Description,
		}}
		_, err := collection.UpdateOne(ctx, bson.M{"description": eachType.Description}, update, options.Update().SetUpsert(true))
		if err != nil {
			return err
		}
	}
	return nil
}

func seedCarePlanTypes(ctx context.Context, db *mongo.Database, types []seedCarePlanType) (map[string]string, error) {
	collection := db.Collection(constvars.MongoCollectionCarePlanTypes)
	idsByDescription := make(map[string]string, len(types))
	for _, eachType := range types {
		update := bson.M{"$setOnInsert": bson.M{
			"_id":         primitive.NewObjectID().Hex(),
			"description": eachType.Description,
			"isCustom":    false,
		}}
		opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
		var doc struct {
			ID string `bson:"_id"`
		}
		err := collection.FindOneAndUpdate(ctx, bson.M{"description": eachType.Description}, update, opts).Decode(&doc)
		if err != nil {
			return nil, err
		}
		idsByDescription[eachType.Description] = doc.ID
	}
	return idsByDescription, nil
}

func seedBarrierTypes(ctx context.Context, db *mongo.Database, types []seedBarrierType, carePlanTypeIDs map[string]string) error {
	collection := db.Collection(constvars.MongoCollectionBarrierTypes)
	for _, eachType := range types {
		ids := make([]string, 0, len(eachType.CarePlanTypeDescriptions))
		for _, description := range eachType.CarePlanTypeDescriptions {
			id, ok := carePlanTypeIDs[description]
			if !ok {
				log.Fatalf("Barrier type %q references unknown care plan type %q", eachType.Description, description)
			}
			ids = append(ids, id)
		}

		update := bson.M{
			"$setOnInsert": bson.M{
				"_id":         primitive.NewObjectID().Hex(),
				"description": eachType.Description,
			},
			"$set": bson.M{
				"domain":          eachType.Domain,
				"carePlanTypeIds": ids,
			},
		}
		_, err := collection.UpdateOne(ctx, bson.M{"description": eachType.Description}, update, options.Update().SetUpsert(true))
		if err != nil {
			return err
		}
	}
	return nil
}
