// File: database/repository/client/interface.go
package clientRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"salonbook/database"
	"salonbook/models"
)

// ClientRepository exposes read access to client records. The appointment
// reference to a client is weak: lookup only, no lifecycle ownership.
type ClientRepository interface {
	List(ctx context.Context) ([]models.Client, error)
	GetByID(ctx context.Context, id string) (*models.Client, error)
	// GetInfo returns the contact subset for a client, or nil when the
	// client does not exist.
	GetInfo(ctx context.Context, id string) (*models.ClientInfo, error)
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a MongoDB-backed ClientRepository.
func NewMongoClientRepo() ClientRepository {
	db := database.MongoClient.Database("salonbook")
	return &mongoClientRepo{
		coll: db.Collection("clients"),
	}
}
