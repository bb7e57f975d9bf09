package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"packhouse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoDatabase = "packhouse"

type MongoIntakeRepo struct {
	DB *mongo.Client
}

func NewMongoIntakeRepo(db *mongo.Client) *MongoIntakeRepo {
	return &MongoIntakeRepo{DB: db}
}

func (r *MongoIntakeRepo) CreateIntake(rec *models.IntakeRecord) error {
	ctx := context.Background()
	col := r.DB.Database(mongoDatabase).Collection("intake_record")

	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	rec.TotalWeight = rec.FuerteWeight + rec.HassWeight

	dayStart := time.Date(rec.Timestamp.Year(), rec.Timestamp.Month(), rec.Timestamp.Day(), 0, 0, 0, 0, time.UTC)
	count, err := col.CountDocuments(ctx, bson.M{
		"timestamp": bson.M{"$gte": dayStart, "$lt": dayStart.Add(24 * time.Hour)},
	})
	if err != nil {
		return err
	}
	rec.PalletID = fmt.Sprintf("PAL-%03d/%s", count+1, rec.Timestamp.Format("0102"))

	if rec.ID == 0 {
		rec.ID = time.Now().UnixNano()
	}
	_, err = col.InsertOne(ctx, rec)
	return err
}

func (r *MongoIntakeRepo) GetIntakes(filters map[string]interface{}, limit int, order string) ([]*models.IntakeRecord, error) {
	ctx := context.Background()
	col := r.DB.Database(mongoDatabase).Collection("intake_record")

	bsonFilter := bson.M{}
	for k, v := range filters {
		bsonFilter[k] = v
	}

	sortDir := -1
	if order == "asc" {
		sortDir = 1
	}
	opts := options.Find().SetSort(bson.M{"timestamp": sortDir})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := col.Find(ctx, bsonFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.IntakeRecord
	for cur.Next(ctx) {
		var rec models.IntakeRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		out = append(out, &rec)
	}
	return out, nil
}

func (r *MongoIntakeRepo) GetIntakeByPallet(palletID string) (*models.IntakeRecord, error) {
	ctx := context.Background()
	var rec models.IntakeRecord
	err := r.DB.Database(mongoDatabase).Collection("intake_record").
		FindOne(ctx, bson.M{"pallet_id": palletID}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *MongoIntakeRepo) IntakeTotalForDate(date string) (float64, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, err
	}
	ctx := context.Background()
	col := r.DB.Database(mongoDatabase).Collection("intake_record")

	cur, err := col.Find(ctx, bson.M{
		"timestamp": bson.M{"$gte": day, "$lt": day.Add(24 * time.Hour)},
	})
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var total float64
	for cur.Next(ctx) {
		var rec models.IntakeRecord
		if err := cur.Decode(&rec); err != nil {
			return 0, err
		}
		total += rec.TotalWeight
	}
	return total, nil
}
