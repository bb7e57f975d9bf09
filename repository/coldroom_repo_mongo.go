package repository

import (
	"context"
	"time"

	"packhouse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoColdRoomRepo struct {
	DB *mongo.Client
}

func NewMongoColdRoomRepo(db *mongo.Client) *MongoColdRoomRepo {
	return &MongoColdRoomRepo{DB: db}
}

func (r *MongoColdRoomRepo) GetTemperatures() ([]models.TemperatureReading, error) {
	ctx := context.Background()
	cur, err := r.DB.Database(mongoDatabase).Collection("temperature_reading").
		Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"recorded_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.TemperatureReading
	for cur.Next(ctx) {
		var t models.TemperatureReading
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *MongoColdRoomRepo) AddTemperature(t *models.TemperatureReading) error {
	ctx := context.Background()
	if t.RecordedAt.IsZero() {
		t.RecordedAt = time.Now().UTC()
	}
	if t.ID == 0 {
		t.ID = time.Now().UnixNano()
	}
	_, err := r.DB.Database(mongoDatabase).Collection("temperature_reading").InsertOne(ctx, t)
	return err
}

func (r *MongoColdRoomRepo) GetBoxes() ([]models.ColdRoomBoxes, error) {
	ctx := context.Background()
	cur, err := r.DB.Database(mongoDatabase).Collection("cold_room_boxes").
		Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "variety", Value: 1}, {Key: "box_type", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ColdRoomBoxes
	for cur.Next(ctx) {
		var b models.ColdRoomBoxes
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// SaveBoxes upserts one inventory row keyed by (variety, box_type).
func (r *MongoColdRoomRepo) SaveBoxes(b *models.ColdRoomBoxes) error {
	ctx := context.Background()
	b.UpdatedAt = time.Now().UTC()
	if b.ID == 0 {
		b.ID = time.Now().UnixNano()
	}
	_, err := r.DB.Database(mongoDatabase).Collection("cold_room_boxes").
		UpdateOne(ctx,
			bson.M{"variety": b.Variety, "box_type": b.BoxType},
			bson.M{
				"$set": bson.M{
					"quantity":   b.Quantity,
					"updated_at": b.UpdatedAt,
				},
				"$setOnInsert": bson.M{
					"_id":      b.ID,
					"variety":  b.Variety,
					"box_type": b.BoxType,
				},
			},
			options.Update().SetUpsert(true),
		)
	return err
}

func (r *MongoColdRoomRepo) GetPallets() ([]models.ColdRoomPallet, error) {
	ctx := context.Background()
	cur, err := r.DB.Database(mongoDatabase).Collection("cold_room_pallet").
		Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"stored_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ColdRoomPallet
	for cur.Next(ctx) {
		var p models.ColdRoomPallet
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *MongoColdRoomRepo) AddPallet(p *models.ColdRoomPallet) error {
	ctx := context.Background()
	if p.StoredAt.IsZero() {
		p.StoredAt = time.Now().UTC()
	}
	if p.ID == 0 {
		p.ID = time.Now().UnixNano()
	}
	_, err := r.DB.Database(mongoDatabase).Collection("cold_room_pallet").InsertOne(ctx, p)
	return err
}

func (r *MongoColdRoomRepo) GetLoadingHistory() ([]models.LoadingHistoryEntry, error) {
	ctx := context.Background()
	cur, err := r.DB.Database(mongoDatabase).Collection("loading_history").
		Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"loaded_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.LoadingHistoryEntry
	for cur.Next(ctx) {
		var e models.LoadingHistoryEntry
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *MongoColdRoomRepo) AddLoadingHistory(e *models.LoadingHistoryEntry) error {
	ctx := context.Background()
	if e.LoadedAt.IsZero() {
		e.LoadedAt = time.Now().UTC()
	}
	if e.ID == 0 {
		e.ID = time.Now().UnixNano()
	}
	_, err := r.DB.Database(mongoDatabase).Collection("loading_history").InsertOne(ctx, e)
	return err
}

func (r *MongoColdRoomRepo) CountBoxes() (int, error) {
	ctx := context.Background()
	cur, err := r.DB.Database(mongoDatabase).Collection("cold_room_boxes").
		Aggregate(ctx, mongo.Pipeline{
			bson.D{{Key: "$group", Value: bson.D{
				{Key: "_id", Value: nil},
				{Key: "total", Value: bson.D{{Key: "$sum", Value: "$quantity"}}},
			}}},
		})
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var result struct {
		Total int `bson:"total"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&result); err != nil {
			return 0, err
		}
	}
	return result.Total, nil
}
