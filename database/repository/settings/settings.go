package settingsRepo

import (
	"context"
	"errors"

	"darsehha/database"
	"darsehha/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SettingsRepository interface {
	Save(ctx context.Context, category models.SettingsCategory) error
	Load(ctx context.Context) ([]models.SettingsCategory, error)
	LoadCategory(ctx context.Context, category string) (*models.SettingsCategory, error)
}

type mongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo returns a SettingsRepository backed by MongoDB.
func NewMongoSettingsRepo() SettingsRepository {
	db := database.MongoClient.Database("darsehha")
	return &mongoSettingsRepo{
		coll: db.Collection("clinic_settings"),
	}
}

// Save upserts one settings category document.
func (r *mongoSettingsRepo) Save(ctx context.Context, category models.SettingsCategory) error {
	if category.Category == "" {
		return errors.New("settings category is required")
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"category": category.Category}, category, opts)
	return err
}

// Load returns every stored settings category.
func (r *mongoSettingsRepo) Load(ctx context.Context) ([]models.SettingsCategory, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.SettingsCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// LoadCategory returns one settings category, or mongo.ErrNoDocuments.
func (r *mongoSettingsRepo) LoadCategory(ctx context.Context, category string) (*models.SettingsCategory, error) {
	var doc models.SettingsCategory
	if err := r.coll.FindOne(ctx, bson.M{"category": category}).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
