package store

import (
	"IntakeKiosk/models"

	"context"
	"errors"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminRepository struct{}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{}
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*models.AdminCredential, error) {
	admin := &models.AdminCredential{}
	err := db.OpenCollections(AdminCollection).FindOne(ctx, bson.M{"username": username}).Decode(admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return admin, nil
}

func (r *AdminRepository) Insert(ctx context.Context, admin *models.AdminCredential) error {
	_, err := db.CreateOne(ctx, db.OpenCollections(AdminCollection), admin)
	return err
}
