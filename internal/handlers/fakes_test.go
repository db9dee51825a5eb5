package handlers_test

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sharesurplus-backend/internal/models"
	"sharesurplus-backend/internal/repository"
)

// In-memory repository fakes so handler tests run without a Mongo instance.
// Every method bumps calls, letting tests assert that rejected requests never
// reach the store.

type fakeListingRepo struct {
	listings []models.FoodListing
	calls    int
}

func (f *fakeListingRepo) Insert(_ context.Context, listing *models.FoodListing) (primitive.ObjectID, error) {
	f.calls++
	l := *listing
	l.ID = primitive.NewObjectID()
	f.listings = append(f.listings, l)
	return l.ID, nil
}

func (f *fakeListingRepo) Search(_ context.Context, name string) ([]models.FoodListing, error) {
	f.calls++
	if name == "" {
		return append([]models.FoodListing{}, f.listings...), nil
	}
	out := []models.FoodListing{}
	for _, l := range f.listings {
		if strings.Contains(strings.ToLower(l.FoodName), strings.ToLower(name)) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeListingRepo) FindByDonor(_ context.Context, email string) ([]models.FoodListing, error) {
	f.calls++
	out := []models.FoodListing{}
	for _, l := range f.listings {
		if l.DonorEmail == email {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeListingRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.FoodListing, error) {
	f.calls++
	for i := range f.listings {
		if f.listings[i].ID == id {
			l := f.listings[i]
			return &l, nil
		}
	}
	return nil, repository.ErrListingNotFound
}

func (f *fakeListingRepo) Update(_ context.Context, id primitive.ObjectID, listing *models.FoodListing) error {
	f.calls++
	for i := range f.listings {
		if f.listings[i].ID == id {
			l := *listing
			l.ID = id
			l.FoodRequestTrack = f.listings[i].FoodRequestTrack
			f.listings[i] = l
			return nil
		}
	}
	l := *listing
	l.ID = id
	f.listings = append(f.listings, l)
	return nil
}

func (f *fakeListingRepo) SetStatus(_ context.Context, id primitive.ObjectID, status string) error {
	f.calls++
	for i := range f.listings {
		if f.listings[i].ID == id {
			f.listings[i].FoodStatus = status
			return nil
		}
	}
	return repository.ErrListingNotFound
}

func (f *fakeListingRepo) SetRequestTrack(_ context.Context, id primitive.ObjectID, track string) error {
	f.calls++
	for i := range f.listings {
		if f.listings[i].ID == id {
			f.listings[i].FoodRequestTrack = track
			return nil
		}
	}
	return repository.ErrListingNotFound
}

func (f *fakeListingRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	f.calls++
	for i := range f.listings {
		if f.listings[i].ID == id {
			f.listings = append(f.listings[:i], f.listings[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeRequestRepo struct {
	requests []models.FoodRequest
	calls    int
}

func (f *fakeRequestRepo) Insert(_ context.Context, request *models.FoodRequest) (primitive.ObjectID, error) {
	f.calls++
	r := *request
	r.ID = primitive.NewObjectID()
	f.requests = append(f.requests, r)
	return r.ID, nil
}

func (f *fakeRequestRepo) FindByListing(_ context.Context, foodID string) (*models.FoodRequest, error) {
	f.calls++
	for i := range f.requests {
		if f.requests[i].FoodID == foodID {
			r := f.requests[i]
			return &r, nil
		}
	}
	return nil, repository.ErrRequestNotFound
}

func (f *fakeRequestRepo) FindByRequester(_ context.Context, email string) ([]models.FoodRequest, error) {
	f.calls++
	out := []models.FoodRequest{}
	for _, r := range f.requests {
		if r.UserEmail == email {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) SetStatusByListing(_ context.Context, foodID, status string) error {
	f.calls++
	for i := range f.requests {
		if f.requests[i].FoodID == foodID {
			f.requests[i].FoodStatus = status
			return nil
		}
	}
	return repository.ErrRequestNotFound
}

func (f *fakeRequestRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	f.calls++
	for i := range f.requests {
		if f.requests[i].ID == id {
			f.requests = append(f.requests[:i], f.requests[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeUserRepo struct {
	users []models.User
	calls int
}

func (f *fakeUserRepo) Insert(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	f.calls++
	u := *user
	u.ID = primitive.NewObjectID()
	f.users = append(f.users, u)
	return u.ID, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]models.User, error) {
	f.calls++
	return append([]models.User{}, f.users...), nil
}
