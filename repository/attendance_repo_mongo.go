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

type MongoAttendanceRepo struct {
	DB *mongo.Client
}

func NewMongoAttendanceRepo(db *mongo.Client) *MongoAttendanceRepo {
	return &MongoAttendanceRepo{DB: db}
}

func (r *MongoAttendanceRepo) UpsertAttendance(rec *models.AttendanceRecord) error {
	ctx := context.Background()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if rec.ID == 0 {
		rec.ID = time.Now().UnixNano()
	}

	_, err := r.DB.Database(mongoDatabase).Collection("attendance_record").
		UpdateOne(ctx,
			bson.M{"employee_id": rec.EmployeeID, "date": rec.Date},
			bson.M{
				"$set": bson.M{
					"status":         rec.Status,
					"clock_in_time":  rec.ClockInTime,
					"clock_out_time": rec.ClockOutTime,
					"designation":    rec.Designation,
					"updated_at":     rec.UpdatedAt,
				},
				"$setOnInsert": bson.M{
					"_id":         rec.ID,
					"employee_id": rec.EmployeeID,
					"date":        rec.Date,
					"created_at":  rec.CreatedAt,
				},
			},
			options.Update().SetUpsert(true),
		)
	return err
}

func (r *MongoAttendanceRepo) UpdateAttendance(id int64, upd *models.AttendanceUpdate) error {
	ctx := context.Background()

	set := bson.M{}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.ClockInTime != nil {
		set["clock_in_time"] = *upd.ClockInTime
	}
	if upd.ClockOutTime != nil {
		set["clock_out_time"] = *upd.ClockOutTime
	}
	if upd.Designation != nil {
		set["designation"] = *upd.Designation
	}
	if len(set) == 0 {
		return nil
	}
	set["updated_at"] = time.Now().UTC()

	res, err := r.DB.Database(mongoDatabase).Collection("attendance_record").
		UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoAttendanceRepo) GetAttendanceByID(id int64) (*models.AttendanceRecord, error) {
	return r.findOne(bson.M{"_id": id})
}

func (r *MongoAttendanceRepo) GetByEmployeeAndDate(employeeID int64, date string) (*models.AttendanceRecord, error) {
	return r.findOne(bson.M{"employee_id": employeeID, "date": date})
}

func (r *MongoAttendanceRepo) findOne(filter bson.M) (*models.AttendanceRecord, error) {
	ctx := context.Background()
	var rec models.AttendanceRecord
	err := r.DB.Database(mongoDatabase).Collection("attendance_record").
		FindOne(ctx, filter).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	r.populateEmployee(ctx, &rec)
	return &rec, nil
}

func (r *MongoAttendanceRepo) GetAttendance(filters map[string]interface{}) ([]*models.AttendanceRecord, error) {
	bsonFilter := bson.M{}
	for k, v := range filters {
		bsonFilter[k] = v
	}
	return r.find(bsonFilter)
}

func (r *MongoAttendanceRepo) GetAttendanceRange(from, to string) ([]*models.AttendanceRecord, error) {
	return r.find(bson.M{"date": bson.M{"$gte": from, "$lte": to}})
}

func (r *MongoAttendanceRepo) find(filter bson.M) ([]*models.AttendanceRecord, error) {
	ctx := context.Background()
	cur, err := r.DB.Database(mongoDatabase).Collection("attendance_record").
		Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "employee_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.AttendanceRecord
	for cur.Next(ctx) {
		var rec models.AttendanceRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		r.populateEmployee(ctx, &rec)
		out = append(out, &rec)
	}
	return out, nil
}

func (r *MongoAttendanceRepo) populateEmployee(ctx context.Context, rec *models.AttendanceRecord) {
	if rec.EmployeeID == 0 {
		return
	}
	var e models.Employee
	if err := r.DB.Database(mongoDatabase).Collection("employee").
		FindOne(ctx, bson.M{"_id": rec.EmployeeID}).Decode(&e); err == nil {
		rec.Employee = &e
	}
}
