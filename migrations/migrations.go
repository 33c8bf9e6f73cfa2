package migrations

import (
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
)

// Run applies every options migration in order. Each step is idempotent.
func Run() {
	log.Println("Running options migrations...")
	AddKeyToOptions()
	CategoriseLegacyReasons()
}

func noDocument(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
