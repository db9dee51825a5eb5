// Package repository provides data access to the shareSurplus collections.
// Every method performs exactly one store operation; documents are atomic at
// the single-document level and no multi-document transactions are used.
package repository

import "errors"

// Collection names in the shareSurplus database.
const (
	FoodsCollection        = "foodsCollection"
	FoodRequestsCollection = "foodRequestCollection"
	UsersCollection        = "usersCollection"
)

var (
	ErrListingNotFound = errors.New("food listing not found")
	ErrRequestNotFound = errors.New("food request not found")
)
