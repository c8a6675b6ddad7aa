package notifications

import (
	"context"
	"medadmin-service/internal/app/contracts"
	"medadmin-service/internal/app/models"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationMongoRepository struct {
	Collection *mongo.Collection
}

func NewNotificationMongoRepository(db *mongo.Database) contracts.NotificationRepository {
	return &NotificationMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionNotifications),
	}
}

func (repo *NotificationMongoRepository) FindByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	result := make([]models.Notification, 0)
	if err := cursor.All(ctx, &result); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return result, nil
}

func (repo *NotificationMongoRepository) FindByID(ctx context.Context, notificationID string) (*models.Notification, error) {
	var notification models.Notification
	err := repo.Collection.FindOne(ctx, bson.M{"_id": notificationID}).Decode(&notification)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &notification, nil
}

func (repo *NotificationMongoRepository) Create(ctx context.Context, notification *models.Notification) error {
	if _, err := repo.Collection.InsertOne(ctx, notification); err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *NotificationMongoRepository) Update(ctx context.Context, notification *models.Notification) error {
	update := bson.M{"$set": bson.M{"read": notification.Read, "updatedAt": notification.UpdatedAt}}
	result, err := repo.Collection.UpdateByID(ctx, notification.ID, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrResourceNotFound(nil, "notification", notification.ID)
	}
	return nil
}

func (repo *NotificationMongoRepository) Delete(ctx context.Context, notificationID string) (bool, error) {
	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": notificationID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}
