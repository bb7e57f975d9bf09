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

type MongoEmployeeRepo struct {
	DB *mongo.Client
}

func NewMongoEmployeeRepo(db *mongo.Client) *MongoEmployeeRepo {
	return &MongoEmployeeRepo{DB: db}
}

func (r *MongoEmployeeRepo) CreateEmployee(e *models.Employee) error {
	ctx := context.Background()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.Status == "" {
		e.Status = "active"
	}
	if e.ID == 0 {
		e.ID = time.Now().UnixNano()
	}
	_, err := r.DB.Database(mongoDatabase).Collection("employee").InsertOne(ctx, e)
	return err
}

func (r *MongoEmployeeRepo) GetEmployees(filters map[string]interface{}) ([]*models.Employee, error) {
	ctx := context.Background()

	bsonFilter := bson.M{}
	for k, v := range filters {
		bsonFilter[k] = v
	}

	cur, err := r.DB.Database(mongoDatabase).Collection("employee").
		Find(ctx, bsonFilter, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Employee
	for cur.Next(ctx) {
		var e models.Employee
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, nil
}

func (r *MongoEmployeeRepo) GetEmployeeByID(id int64) (*models.Employee, error) {
	ctx := context.Background()
	var e models.Employee
	err := r.DB.Database(mongoDatabase).Collection("employee").
		FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *MongoEmployeeRepo) UpdateEmployee(e *models.Employee) error {
	ctx := context.Background()
	_, err := r.DB.Database(mongoDatabase).Collection("employee").
		UpdateOne(ctx, bson.M{"_id": e.ID}, bson.M{"$set": bson.M{
			"name":      e.Name,
			"id_number": e.IDNumber,
			"phone":     e.Phone,
			"contract":  e.Contract,
			"role":      e.Role,
			"status":    e.Status,
		}})
	return err
}

func (r *MongoEmployeeRepo) DeleteEmployee(id int64) error {
	ctx := context.Background()
	res, err := r.DB.Database(mongoDatabase).Collection("employee").
		DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoEmployeeRepo) CountEmployees() (int, error) {
	ctx := context.Background()
	count, err := r.DB.Database(mongoDatabase).Collection("employee").
		CountDocuments(ctx, bson.M{"status": "active"})
	return int(count), err
}
