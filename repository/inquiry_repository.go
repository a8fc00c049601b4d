package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/models"
)

type InquiryRepository interface {
	FindAll(ctx context.Context, page, limit int) ([]models.Inquiry, int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Inquiry, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type MongoInquiryRepository struct {
	collection *mongo.Collection
}

func NewMongoInquiryRepository(db *mongo.Database) *MongoInquiryRepository {
	return &MongoInquiryRepository{collection: db.Collection("inquiries")}
}

func (r *MongoInquiryRepository) FindAll(ctx context.Context, page, limit int) ([]models.Inquiry, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var inquiries []models.Inquiry
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, 0, err
	}
	return inquiries, total, nil
}

func (r *MongoInquiryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&inquiry)
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (r *MongoInquiryRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *MongoInquiryRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *MongoInquiryRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	if status == "" {
		return r.collection.CountDocuments(ctx, bson.M{})
	}
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}
