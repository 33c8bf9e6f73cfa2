package store

import (
	"IntakeKiosk/models"
	"IntakeKiosk/services"

	"context"
	"errors"
	"fmt"
	"log"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	PatientCollection = "patients"
	OptionsCollection = "form_options"
	AdminCollection   = "admins"
)

var newestFirst = bson.D{{Key: "submittedAt", Value: -1}}

type PatientRepository struct{}

func NewPatientRepository() *PatientRepository {
	return &PatientRepository{}
}

func (r *PatientRepository) collection() *mongo.Collection {
	return db.OpenCollections(PatientCollection)
}

func (r *PatientRepository) FindSince(ctx context.Context, key services.DedupKey, since time.Time) (*models.PatientRecord, error) {
	filter := bson.M{
		"fullName":         key.FullName,
		"mobileNumber":     key.MobileNumber,
		"reason":           key.Reason,
		"selectedCategory": key.SelectedCategory,
		"submittedAt":      bson.M{"$gte": since},
	}
	return r.findOne(ctx, filter)
}

func (r *PatientRepository) LatestByMobile(ctx context.Context, mobile string) (*models.PatientRecord, error) {
	return r.findOne(ctx, bson.M{"mobileNumber": mobile})
}

func (r *PatientRepository) findOne(ctx context.Context, filter bson.M) (*models.PatientRecord, error) {
	record := &models.PatientRecord{}
	err := r.collection().FindOne(ctx, filter, options.FindOne().SetSort(newestFirst)).Decode(record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *PatientRepository) Insert(ctx context.Context, record *models.PatientRecord) (string, error) {
	inserted, err := db.CreateOne(ctx, r.collection(), record)
	if err != nil {
		return "", err
	}
	id, ok := inserted.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", inserted.InsertedID)
	}
	record.ID = id
	log.Println("inserted patient: ", id.Hex())
	return id.Hex(), nil
}

func (r *PatientRepository) FindAll(ctx context.Context) ([]models.PatientRecord, error) {
	cursor, err := r.collection().Find(ctx, bson.M{}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, err
	}
	records := []models.PatientRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
