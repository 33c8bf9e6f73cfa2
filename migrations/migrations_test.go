package migrations

import (
	"IntakeKiosk/models"

	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestLegacyReasonsUpdate_FlatList(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	doc := models.OptionsDocument{Reasons: []interface{}{"Cleaning", "Braces"}}

	update, ok := LegacyReasonsUpdate(doc, now)
	require.True(t, ok)

	set := update["$set"].(bson.M)
	assert.Equal(t, []models.ReasonCategory{{Name: models.LegacyCategory, Items: []string{"Cleaning", "Braces"}}}, set["reasons"])
	assert.Equal(t, now, set["updatedAt"])
}

func TestLegacyReasonsUpdate_AlreadyCategorised(t *testing.T) {
	doc := models.OptionsDocument{Reasons: []interface{}{
		bson.D{{Key: "name", Value: "General"}, {Key: "items", Value: bson.A{"Cleaning"}}},
	}}
	_, ok := LegacyReasonsUpdate(doc, time.Now())
	assert.False(t, ok)
}

func TestLegacyReasonsUpdate_Empty(t *testing.T) {
	_, ok := LegacyReasonsUpdate(models.OptionsDocument{}, time.Now())
	assert.False(t, ok)
}

func TestNoDocument(t *testing.T) {
	assert.True(t, noDocument(mongo.ErrNoDocuments))
	assert.True(t, noDocument(fmt.Errorf("find options: %w", mongo.ErrNoDocuments)))
	assert.False(t, noDocument(errors.New("timeout")))
	assert.False(t, noDocument(nil))
}
