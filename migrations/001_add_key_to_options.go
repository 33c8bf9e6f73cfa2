package migrations

import (
	"IntakeKiosk/models"
	"IntakeKiosk/store"

	"context"
	"log"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
* Older deployments wrote the options document without a key
* Tag the most recent untagged document, unless a keyed one already exists
 */
func AddKeyToOptions() {
	ctx := context.Background()
	coll := db.DB.Collection(store.OptionsCollection)

	keyed, err := coll.CountDocuments(ctx, bson.M{"key": models.OptionsKey})
	if err != nil {
		log.Println("Error while counting keyed options: ", err)
		return
	}
	if keyed > 0 {
		log.Println("Options document already keyed")
		return
	}

	opts := options.FindOneAndUpdate().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	err = coll.FindOneAndUpdate(ctx,
		bson.M{"key": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"key": models.OptionsKey}},
		opts,
	).Err()
	if noDocument(err) {
		log.Println("No options document to key")
		return
	}
	if err != nil {
		log.Println("Error while keying options document: ", err)
		return
	}
	log.Println("Keyed the options document")
}
