package medicalRecords

import (
	"context"
	"medadmin-service/internal/app/contracts"
	"medadmin-service/internal/app/models"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/dto/requests"
	"medadmin-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MedicalRecordMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicalRecordMongoRepository(db *mongo.Database) contracts.MedicalRecordRepository {
	return &MedicalRecordMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionMedicalRecords),
	}
}

func (repo *MedicalRecordMongoRepository) FindAll(ctx context.Context, filter *requests.MedicalRecordFilter) ([]models.MedicalRecord, error) {
	query := bson.M{}
	if filter != nil && filter.PatientID != "" {
		query["patientId"] = filter.PatientID
	}
	opts := options.Find().SetSort(bson.D{{Key: "visitDate", Value: -1}, {Key: "createdAt", Value: -1}})

	cursor, err := repo.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	result := make([]models.MedicalRecord, 0)
	if err := cursor.All(ctx, &result); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return result, nil
}

func (repo *MedicalRecordMongoRepository) FindByID(ctx context.Context, recordID string) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	err := repo.Collection.FindOne(ctx, bson.M{"_id": recordID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (repo *MedicalRecordMongoRepository) Create(ctx context.Context, record *models.MedicalRecord) error {
	if _, err := repo.Collection.InsertOne(ctx, record); err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *MedicalRecordMongoRepository) Update(ctx context.Context, record *models.MedicalRecord) error {
	result, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": record.ID}, record)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrResourceNotFound(nil, "medical record", record.ID)
	}
	return nil
}

func (repo *MedicalRecordMongoRepository) Delete(ctx context.Context, recordID string) (bool, error) {
	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": recordID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}
