package repository

import (
	"context"
	"time"

	"packhouse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoSupplierRepo struct {
	DB *mongo.Client
}

func NewMongoSupplierRepo(db *mongo.Client) *MongoSupplierRepo {
	return &MongoSupplierRepo{DB: db}
}

func (r *MongoSupplierRepo) CreateSupplier(s *models.Supplier) error {
	ctx := context.Background()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	if s.Status == "" {
		s.Status = "active"
	}
	if s.ID == 0 {
		s.ID = time.Now().UnixNano()
	}
	_, err := r.DB.Database(mongoDatabase).Collection("supplier").InsertOne(ctx, s)
	return err
}

func (r *MongoSupplierRepo) GetSuppliers() ([]models.Supplier, error) {
	ctx := context.Background()
	cur, err := r.DB.Database(mongoDatabase).Collection("supplier").
		Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Supplier
	for cur.Next(ctx) {
		var s models.Supplier
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *MongoSupplierRepo) CountSuppliers() (int, error) {
	ctx := context.Background()
	count, err := r.DB.Database(mongoDatabase).Collection("supplier").CountDocuments(ctx, bson.M{})
	return int(count), err
}
