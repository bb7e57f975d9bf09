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

type MongoCountingRepo struct {
	DB *mongo.Client
}

func NewMongoCountingRepo(db *mongo.Client) *MongoCountingRepo {
	return &MongoCountingRepo{DB: db}
}

func (r *MongoCountingRepo) CreateCounting(rec *models.CountingRecord) error {
	ctx := context.Background()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if rec.Status == "" {
		rec.Status = models.CountingPending
	}
	if rec.ID == 0 {
		rec.ID = time.Now().UnixNano()
	}
	_, err := r.DB.Database(mongoDatabase).Collection("counting_record").InsertOne(ctx, rec)
	return err
}

func (r *MongoCountingRepo) GetCountingHistory(filters map[string]interface{}) ([]*models.CountingRecord, error) {
	ctx := context.Background()

	bsonFilter := bson.M{}
	for k, v := range filters {
		bsonFilter[k] = v
	}

	cur, err := r.DB.Database(mongoDatabase).Collection("counting_record").
		Find(ctx, bsonFilter, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.CountingRecord
	for cur.Next(ctx) {
		var rec models.CountingRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		out = append(out, &rec)
	}
	return out, nil
}

func (r *MongoCountingRepo) GetCountingByPallet(palletID string) (*models.CountingRecord, error) {
	ctx := context.Background()
	var rec models.CountingRecord
	err := r.DB.Database(mongoDatabase).Collection("counting_record").
		FindOne(ctx, bson.M{"pallet_id": palletID}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *MongoCountingRepo) UpdateCountingStatus(id int64, status string) error {
	ctx := context.Background()
	res, err := r.DB.Database(mongoDatabase).Collection("counting_record").
		UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
