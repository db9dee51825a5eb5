// Package models defines the documents stored in the shareSurplus database.
// Field names mirror the collection documents, so json and bson tags are the
// lowercase keys the frontend already sends.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// FoodListing is a donor-posted surplus-food offer.
// FoodStatus is a free-form string owned by the UI ("available",
// "requested", "delivered", ...); this layer never interprets it.
type FoodListing struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FoodName         string             `bson:"foodname" json:"foodname" binding:"required"`
	FoodImage        string             `bson:"foodimage" json:"foodimage"`
	FoodQuantity     string             `bson:"foodquantity" json:"foodquantity" binding:"required"`
	ExpireDate       string             `bson:"expiredate" json:"expiredate" binding:"required"`
	PickupLocation   string             `bson:"pickuplocation" json:"pickuplocation" binding:"required"`
	AdditionalNotes  string             `bson:"additionalnotes" json:"additionalnotes"`
	FoodStatus       string             `bson:"foodstatus" json:"foodstatus"`
	DonorEmail       string             `bson:"donoremail" json:"donoremail" binding:"required,email"`
	DonorName        string             `bson:"donorname,omitempty" json:"donorname,omitempty"`
	DonorImage       string             `bson:"donorimage,omitempty" json:"donorimage,omitempty"`
	FoodRequestTrack string             `bson:"foodrequesttrack,omitempty" json:"foodrequesttrack,omitempty"`
}

// FoodRequest is a user's claim against a listing. FoodID carries the hex id
// of the referenced FoodListing as a plain string; the reference is logical
// only and never enforced against the foods collection.
type FoodRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FoodID      string             `bson:"foodid" json:"foodid" binding:"required"`
	UserEmail   string             `bson:"useremail" json:"useremail" binding:"required,email"`
	FoodStatus  string             `bson:"foodstatus" json:"foodstatus"`
	FoodName    string             `bson:"foodname,omitempty" json:"foodname,omitempty"`
	FoodImage   string             `bson:"foodimage,omitempty" json:"foodimage,omitempty"`
	DonorEmail  string             `bson:"donoremail,omitempty" json:"donoremail,omitempty"`
	DonorName   string             `bson:"donorname,omitempty" json:"donorname,omitempty"`
	ExpireDate  string             `bson:"expiredate,omitempty" json:"expiredate,omitempty"`
	RequestDate string             `bson:"requestdate,omitempty" json:"requestdate,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
}

// User is a registered account. Password is optional: accounts created through
// the federated login flow never carry one, direct registrations store a
// bcrypt hash. The hash is stripped before any response leaves a handler.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email" binding:"required,email"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Password string             `bson:"password,omitempty" json:"password,omitempty"`
}
