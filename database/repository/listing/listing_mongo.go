package listingRepo

import (
	"context"
	"fmt"
	"time"

	"petsitter/config"
	"petsitter/database"
	"petsitter/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoListingRepo implements ListingRepository using MongoDB. User sitter
// offers live in the "userJobs" collection, pet-sitting requests in
// "userPetAds".
type MongoListingRepo struct {
	jobs   *mongo.Collection
	petAds *mongo.Collection
}

// NewMongoListingRepo creates a new instance of ListingRepository using MongoDB.
func NewMongoListingRepo() ListingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoListingRepo{
		jobs:   db.Collection("userJobs"),
		petAds: db.Collection("userPetAds"),
	}
}

func (r *MongoListingRepo) coll(kind models.ListingKind) *mongo.Collection {
	if kind == models.KindPetAd {
		return r.petAds
	}
	return r.jobs
}

func (r *MongoListingRepo) All(ctx context.Context, kind models.ListingKind) ([]models.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "id", Value: -1}})
	cursor, err := r.coll(kind).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve %s listings: %w", kind, err)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	for cursor.Next(ctx) {
		var l models.Listing
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to decode listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return listings, nil
}

func (r *MongoListingRepo) Insert(ctx context.Context, listing *models.Listing) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll(listing.Kind).InsertOne(ctx, listing); err != nil {
		return fmt.Errorf("failed to insert listing %d: %w", listing.ID, err)
	}
	return nil
}
