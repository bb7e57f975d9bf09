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

type MongoLoadingSheetRepo struct {
	DB *mongo.Client
}

func NewMongoLoadingSheetRepo(db *mongo.Client) *MongoLoadingSheetRepo {
	return &MongoLoadingSheetRepo{DB: db}
}

func (r *MongoLoadingSheetRepo) CreateLoadingSheet(sheet *models.LoadingSheet) error {
	ctx := context.Background()
	if sheet.CreatedAt.IsZero() {
		sheet.CreatedAt = time.Now().UTC()
	}
	if sheet.SheetNo == "" {
		sheet.SheetNo = "LS-" + sheet.CreatedAt.Format("20060102-150405")
	}
	if sheet.Status == "" {
		sheet.Status = "draft"
	}
	if sheet.ID == 0 {
		sheet.ID = time.Now().UnixNano()
	}

	_, err := r.DB.Database(mongoDatabase).Collection("loading_sheet").InsertOne(ctx, sheet)
	if err != nil {
		return err
	}

	if len(sheet.Lines) > 0 {
		docs := make([]interface{}, 0, len(sheet.Lines))
		for i := range sheet.Lines {
			sheet.Lines[i].SheetID = sheet.ID
			if sheet.Lines[i].ID == 0 {
				sheet.Lines[i].ID = time.Now().UnixNano() + int64(i)
			}
			docs = append(docs, sheet.Lines[i])
		}
		if _, err := r.DB.Database(mongoDatabase).Collection("loading_sheet_line").InsertMany(ctx, docs); err != nil {
			return err
		}
	}
	return nil
}

func (r *MongoLoadingSheetRepo) GetLoadingSheets(filters map[string]interface{}, single bool) ([]*models.LoadingSheet, error) {
	ctx := context.Background()

	bsonFilter := bson.M{}
	for k, v := range filters {
		if k == "id" {
			k = "_id"
		}
		bsonFilter[k] = v
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if single {
		opts.SetLimit(1)
	}

	cur, err := r.DB.Database(mongoDatabase).Collection("loading_sheet").Find(ctx, bsonFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.LoadingSheet
	for cur.Next(ctx) {
		var s models.LoadingSheet
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}

	for _, s := range out {
		if err := r.populateSheet(ctx, s); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *MongoLoadingSheetRepo) populateSheet(ctx context.Context, s *models.LoadingSheet) error {
	cur, err := r.DB.Database(mongoDatabase).Collection("loading_sheet_line").
		Find(ctx, bson.M{"sheet_id": s.ID}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return err
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var line models.LoadingSheetLine
		if err := cur.Decode(&line); err != nil {
			return err
		}
		s.Lines = append(s.Lines, line)
	}

	if s.CarrierID != nil {
		var c models.Carrier
		err := r.DB.Database(mongoDatabase).Collection("carrier").
			FindOne(ctx, bson.M{"_id": *s.CarrierID}).Decode(&c)
		if err == nil {
			s.Carrier = &c
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}
	}

	if s.CreatedBy != 0 {
		var u models.AppUser
		err := r.DB.Database(mongoDatabase).Collection("app_user").
			FindOne(ctx, bson.M{"_id": s.CreatedBy}).Decode(&u)
		if err == nil {
			u.Password = ""
			s.CreatedByUser = &u
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}
	}
	return nil
}

func (r *MongoLoadingSheetRepo) UpdatePDFInfo(id int64, path string, createdAt time.Time) error {
	ctx := context.Background()
	res, err := r.DB.Database(mongoDatabase).Collection("loading_sheet").
		UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
			"pdf_path":       path,
			"pdf_created_at": createdAt,
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
