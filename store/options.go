package store

import (
	"IntakeKiosk/models"

	"context"
	"errors"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OptionRepository keeps the singleton options document, addressed by its key field.
type OptionRepository struct{}

func NewOptionRepository() *OptionRepository {
	return &OptionRepository{}
}

func optionsFilter() bson.M {
	return bson.M{"key": models.OptionsKey}
}

func (r *OptionRepository) Load(ctx context.Context) (*models.OptionsDocument, error) {
	doc := &models.OptionsDocument{}
	err := db.OpenCollections(OptionsCollection).FindOne(ctx, optionsFilter()).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *OptionRepository) Replace(ctx context.Context, doc models.OptionsDocument) error {
	doc.Key = models.OptionsKey
	_, err := db.OpenCollections(OptionsCollection).ReplaceOne(ctx, optionsFilter(), doc, options.Replace().SetUpsert(true))
	return err
}
