package repository

import (
	"context"
	"errors"
	"time"

	"packhouse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoSettingsRepo struct {
	DB *mongo.Client
}

func NewMongoSettingsRepo(db *mongo.Client) *MongoSettingsRepo {
	return &MongoSettingsRepo{DB: db}
}

// SaveSettings keeps a single settings document, replacing it on update.
func (r *MongoSettingsRepo) SaveSettings(s *models.FacilitySettings) error {
	ctx := context.Background()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	existing, err := r.GetSettings()
	if err != nil {
		return err
	}
	if existing != nil {
		s.ID = existing.ID
		_, err = r.DB.Database(mongoDatabase).Collection("facility_settings").
			ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
		return err
	}

	if s.ID == 0 {
		s.ID = time.Now().UnixNano()
	}
	_, err = r.DB.Database(mongoDatabase).Collection("facility_settings").InsertOne(ctx, s)
	return err
}

func (r *MongoSettingsRepo) GetSettings() (*models.FacilitySettings, error) {
	ctx := context.Background()
	var s models.FacilitySettings
	err := r.DB.Database(mongoDatabase).Collection("facility_settings").
		FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.M{"created_at": -1})).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
