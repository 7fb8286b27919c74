package hospitals

import (
	"context"
	"healthlink-service/internal/app/models"
	"healthlink-service/internal/pkg/constvars"
	"healthlink-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HospitalMongoRepository struct {
	Collection *mongo.Collection
}

func NewHospitalMongoRepository(db *mongo.Client, dbName string) HospitalRepository {
	return &HospitalMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionHospitals),
	}
}

func (repo *HospitalMongoRepository) FindByCity(ctx context.Context, city string) ([]models.Facility, error) {
	findOptions := options.Find().SetLimit(constvars.FacilityDirectoryLimit)
	cursor, err := repo.Collection.Find(ctx, bson.M{"city": city}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	facilities := make([]models.Facility, 0)
	if err := cursor.All(ctx, &facilities); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return facilities, nil
}
