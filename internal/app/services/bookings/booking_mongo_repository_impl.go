package bookings

import (
	"context"
	"healthlink-service/internal/app/models"
	"healthlink-service/internal/pkg/constvars"
	"healthlink-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
)

type TokenMongoRepository struct {
	Collection *mongo.Collection
}

func NewTokenMongoRepository(db *mongo.Client, dbName string) TokenAuditRepository {
	return &TokenMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTokens),
	}
}

func (repo *TokenMongoRepository) RecordToken(ctx context.Context, record *models.TokenRecord) error {
	_, err := repo.Collection.InsertOne(ctx, record)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
