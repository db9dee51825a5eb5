package repository

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sharesurplus-backend/internal/models"
)

// ListingRepository defines data access for food listings.
type ListingRepository interface {
	Insert(ctx context.Context, listing *models.FoodListing) (primitive.ObjectID, error)
	// Search returns listings whose foodname contains name, case-insensitively.
	// An empty name returns every listing.
	Search(ctx context.Context, name string) ([]models.FoodListing, error)
	FindByDonor(ctx context.Context, email string) ([]models.FoodListing, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.FoodListing, error)
	// Update replaces the mutable field set, inserting when id is unmatched.
	Update(ctx context.Context, id primitive.ObjectID, listing *models.FoodListing) error
	// SetStatus updates foodstatus only; ErrListingNotFound when id is unmatched.
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) error
	// SetRequestTrack updates foodrequesttrack only; ErrListingNotFound when unmatched.
	SetRequestTrack(ctx context.Context, id primitive.ObjectID, track string) error
	// Delete removes the listing and returns the deleted count (0 when absent).
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// MongoListingRepository implements ListingRepository against foodsCollection.
type MongoListingRepository struct {
	col *mongo.Collection
}

func NewMongoListingRepository(db *mongo.Database) *MongoListingRepository {
	return &MongoListingRepository{col: db.Collection(FoodsCollection)}
}

func (r *MongoListingRepository) Insert(ctx context.Context, listing *models.FoodListing) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, listing)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoListingRepository) Search(ctx context.Context, name string) ([]models.FoodListing, error) {
	filter := bson.M{}
	if name != "" {
		// Quote the query so regex metacharacters match literally.
		filter["foodname"] = primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"}
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	listings := []models.FoodListing{}
	if err := cur.All(ctx, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *MongoListingRepository) FindByDonor(ctx context.Context, email string) ([]models.FoodListing, error) {
	cur, err := r.col.Find(ctx, bson.M{"donoremail": email})
	if err != nil {
		return nil, err
	}
	listings := []models.FoodListing{}
	if err := cur.All(ctx, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *MongoListingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.FoodListing, error) {
	var listing models.FoodListing
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&listing)
	if err == mongo.ErrNoDocuments {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *MongoListingRepository) Update(ctx context.Context, id primitive.ObjectID, listing *models.FoodListing) error {
	update := bson.M{"$set": bson.M{
		"foodname":        listing.FoodName,
		"foodimage":       listing.FoodImage,
		"foodquantity":    listing.FoodQuantity,
		"expiredate":      listing.ExpireDate,
		"pickuplocation":  listing.PickupLocation,
		"additionalnotes": listing.AdditionalNotes,
		"foodstatus":      listing.FoodStatus,
		"donoremail":      listing.DonorEmail,
	}}
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
	return err
}

func (r *MongoListingRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	return r.setField(ctx, id, "foodstatus", status)
}

func (r *MongoListingRepository) SetRequestTrack(ctx context.Context, id primitive.ObjectID, track string) error {
	return r.setField(ctx, id, "foodrequesttrack", track)
}

func (r *MongoListingRepository) setField(ctx context.Context, id primitive.ObjectID, field, value string) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrListingNotFound
	}
	return nil
}

func (r *MongoListingRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
