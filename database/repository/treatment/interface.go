// File: database/repository/treatment/interface.go
package treatmentRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"salonbook/database"
	"salonbook/models"
)

// TreatmentRepository exposes read access to recurring treatment rules.
// Treatments are authored elsewhere; the scheduling core only consumes them.
type TreatmentRepository interface {
	// List returns treatments, optionally filtered to one client when
	// clientID is non-empty.
	List(ctx context.Context, clientID string) ([]models.RecurringTreatment, error)
	ListActive(ctx context.Context) ([]models.RecurringTreatment, error)
}

type mongoTreatmentRepo struct {
	coll *mongo.Collection
}

// NewMongoTreatmentRepo constructs a MongoDB-backed TreatmentRepository.
func NewMongoTreatmentRepo() TreatmentRepository {
	db := database.MongoClient.Database("salonbook")
	return &mongoTreatmentRepo{
		coll: db.Collection("recurring_treatments"),
	}
}
