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

// ProductRepository defines catalog data access. The catalog is split across
// one collection per category, so every operation takes the category name.
type ProductRepository interface {
	FindAll(ctx context.Context, category string, page, limit int) ([]models.Product, int64, error)
	FindByID(ctx context.Context, category string, id primitive.ObjectID) (*models.Product, error)
	Create(ctx context.Context, category string, product *models.Product) error
	Update(ctx context.Context, category string, id primitive.ObjectID, updates bson.M) (int64, error)
	Delete(ctx context.Context, category string, id primitive.ObjectID) (int64, error)
	Names(ctx context.Context, category string) (map[string]string, error)
	Count(ctx context.Context, category string) (int64, error)
}

// MongoProductRepository implements ProductRepository.
type MongoProductRepository struct {
	db *mongo.Database
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{db: db}
}

func (r *MongoProductRepository) collection(category string) *mongo.Collection {
	return r.db.Collection(category)
}

func (r *MongoProductRepository) FindAll(ctx context.Context, category string, page, limit int) ([]models.Product, int64, error) {
	coll := r.collection(category)

	total, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := coll.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *MongoProductRepository) FindByID(ctx context.Context, category string, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := r.collection(category).FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *MongoProductRepository) Create(ctx context.Context, category string, product *models.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	product.Category = category
	product.CreatedAt = time.Now().UTC()
	_, err := r.collection(category).InsertOne(ctx, product)
	return err
}

func (r *MongoProductRepository) Update(ctx context.Context, category string, id primitive.ObjectID, updates bson.M) (int64, error) {
	updates["updatedAt"] = time.Now().UTC()
	res, err := r.collection(category).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, category string, id primitive.ObjectID) (int64, error) {
	res, err := r.collection(category).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Names returns the id→name pairs for one category, projected down to the
// two fields the lookup map needs.
func (r *MongoProductRepository) Names(ctx context.Context, category string) (map[string]string, error) {
	cursor, err := r.collection(category).Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"_id": 1, "name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	names := make(map[string]string)
	for cursor.Next(ctx) {
		var doc struct {
			ID   primitive.ObjectID `bson:"_id"`
			Name string             `bson:"name"`
		}
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		names[doc.ID.Hex()] = doc.Name
	}
	return names, cursor.Err()
}

func (r *MongoProductRepository) Count(ctx context.Context, category string) (int64, error) {
	return r.collection(category).CountDocuments(ctx, bson.M{})
}
