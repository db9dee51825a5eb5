package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"sharesurplus-backend/internal/models"
)

// RequestRepository defines data access for food requests.
//
// Two lookup conventions coexist on purpose: status and single-document reads
// match on the foodid field (the referenced listing, how the client tracks a
// request), while Delete matches the request's own _id. Both are part of the
// URL contract the frontend depends on and are kept distinct.
type RequestRepository interface {
	Insert(ctx context.Context, request *models.FoodRequest) (primitive.ObjectID, error)
	// FindByListing returns the first request whose foodid equals foodID;
	// ErrRequestNotFound when none exists.
	FindByListing(ctx context.Context, foodID string) (*models.FoodRequest, error)
	FindByRequester(ctx context.Context, email string) ([]models.FoodRequest, error)
	// SetStatusByListing updates foodstatus on the request matching foodid;
	// ErrRequestNotFound when unmatched.
	SetStatusByListing(ctx context.Context, foodID, status string) error
	// Delete removes the request with the given _id and returns the deleted count.
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// MongoRequestRepository implements RequestRepository against foodRequestCollection.
type MongoRequestRepository struct {
	col *mongo.Collection
}

func NewMongoRequestRepository(db *mongo.Database) *MongoRequestRepository {
	return &MongoRequestRepository{col: db.Collection(FoodRequestsCollection)}
}

func (r *MongoRequestRepository) Insert(ctx context.Context, request *models.FoodRequest) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, request)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoRequestRepository) FindByListing(ctx context.Context, foodID string) (*models.FoodRequest, error) {
	var request models.FoodRequest
	err := r.col.FindOne(ctx, bson.M{"foodid": foodID}).Decode(&request)
	if err == mongo.ErrNoDocuments {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *MongoRequestRepository) FindByRequester(ctx context.Context, email string) ([]models.FoodRequest, error) {
	cur, err := r.col.Find(ctx, bson.M{"useremail": email})
	if err != nil {
		return nil, err
	}
	requests := []models.FoodRequest{}
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *MongoRequestRepository) SetStatusByListing(ctx context.Context, foodID, status string) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"foodid": foodID}, bson.M{"$set": bson.M{"foodstatus": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (r *MongoRequestRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
