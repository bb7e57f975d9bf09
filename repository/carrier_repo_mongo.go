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

type MongoCarrierRepo struct {
	DB *mongo.Client
}

func NewMongoCarrierRepo(db *mongo.Client) *MongoCarrierRepo {
	return &MongoCarrierRepo{DB: db}
}

func (r *MongoCarrierRepo) CreateCarrier(c *models.Carrier) error {
	ctx := context.Background()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if c.ID == 0 {
		c.ID = time.Now().UnixNano()
	}
	_, err := r.DB.Database(mongoDatabase).Collection("carrier").InsertOne(ctx, c)
	return err
}

func (r *MongoCarrierRepo) GetCarriers() ([]models.Carrier, error) {
	ctx := context.Background()
	cur, err := r.DB.Database(mongoDatabase).Collection("carrier").
		Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Carrier
	for cur.Next(ctx) {
		var c models.Carrier
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *MongoCarrierRepo) CountCarriers() (int, error) {
	ctx := context.Background()
	count, err := r.DB.Database(mongoDatabase).Collection("carrier").CountDocuments(ctx, bson.M{})
	return int(count), err
}

func (r *MongoCarrierRepo) CreateAssignment(a *models.CarrierAssignment) error {
	ctx := context.Background()
	if a.AssignedAt.IsZero() {
		a.AssignedAt = time.Now().UTC()
	}
	if a.Status == "" {
		a.Status = models.AssignmentAssigned
	}
	if a.ID == 0 {
		a.ID = time.Now().UnixNano()
	}
	_, err := r.DB.Database(mongoDatabase).Collection("carrier_assignment").InsertOne(ctx, a)
	return err
}

func (r *MongoCarrierRepo) GetAssignments(filters map[string]interface{}) ([]*models.CarrierAssignment, error) {
	ctx := context.Background()

	bsonFilter := bson.M{}
	for k, v := range filters {
		bsonFilter[k] = v
	}

	cur, err := r.DB.Database(mongoDatabase).Collection("carrier_assignment").
		Find(ctx, bsonFilter, options.Find().SetSort(bson.M{"assigned_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.CarrierAssignment
	for cur.Next(ctx) {
		var a models.CarrierAssignment
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}

	for _, a := range out {
		var c models.Carrier
		err := r.DB.Database(mongoDatabase).Collection("carrier").
			FindOne(ctx, bson.M{"_id": a.CarrierID}).Decode(&c)
		if err == nil {
			a.Carrier = &c
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
	}
	return out, nil
}

func (r *MongoCarrierRepo) UpdateAssignmentStatus(id int64, status string) error {
	ctx := context.Background()
	now := time.Now().UTC()
	res, err := r.DB.Database(mongoDatabase).Collection("carrier_assignment").
		UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
			"status":     status,
			"updated_at": now,
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoCarrierRepo) AddTransitEvent(e *models.TransitHistory) error {
	ctx := context.Background()
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now().UTC()
	}
	if e.ID == 0 {
		e.ID = time.Now().UnixNano()
	}
	_, err := r.DB.Database(mongoDatabase).Collection("transit_history").InsertOne(ctx, e)
	return err
}

func (r *MongoCarrierRepo) GetTransitHistory(assignmentID int64) ([]models.TransitHistory, error) {
	ctx := context.Background()
	cur, err := r.DB.Database(mongoDatabase).Collection("transit_history").
		Find(ctx, bson.M{"assignment_id": assignmentID}, options.Find().SetSort(bson.M{"recorded_at": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.TransitHistory
	for cur.Next(ctx) {
		var e models.TransitHistory
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
