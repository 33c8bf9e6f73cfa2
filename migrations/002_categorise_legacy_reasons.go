package migrations

import (
	"IntakeKiosk/models"
	"IntakeKiosk/store"

	"context"
	"log"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"
)

func CategoriseLegacyReasons() {
	ctx := context.Background()
	coll := db.DB.Collection(store.OptionsCollection)

	doc := models.OptionsDocument{}
	err := coll.FindOne(ctx, bson.M{"key": models.OptionsKey}).Decode(&doc)
	if noDocument(err) {
		log.Println("No options document to migrate")
		return
	}
	if err != nil {
		log.Println("Error while reading options document: ", err)
		return
	}

	update, ok := LegacyReasonsUpdate(doc, time.Now())
	if !ok {
		log.Println("Reasons already categorised")
		return
	}
	updated, err := coll.UpdateOne(ctx, bson.M{"key": models.OptionsKey}, update)
	if err != nil {
		log.Println("Error while updating reasons: ", err)
		return
	}
	log.Println("updatedCount: ", updated.ModifiedCount)
}

// LegacyReasonsUpdate builds the $set for a document whose reasons are still a
// flat list of strings. ok is false when there is nothing to rewrite.
func LegacyReasonsUpdate(doc models.OptionsDocument, now time.Time) (bson.M, bool) {
	if len(doc.Reasons) == 0 {
		return nil, false
	}
	if _, legacy := doc.Reasons[0].(string); !legacy {
		return nil, false
	}
	return bson.M{"$set": bson.M{
		"reasons":   models.NormalizeReasons(doc.Reasons),
		"updatedAt": now,
	}}, true
}
