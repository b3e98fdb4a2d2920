// File: database/repository/treatment/crud.go
package treatmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"salonbook/models"
)

const queryTimeout = 5 * time.Second

func (r *mongoTreatmentRepo) List(ctx context.Context, clientID string) ([]models.RecurringTreatment, error) {
	filter := bson.M{}
	if clientID != "" {
		filter["client_id"] = clientID
	}
	return r.find(ctx, filter)
}

func (r *mongoTreatmentRepo) ListActive(ctx context.Context) ([]models.RecurringTreatment, error) {
	return r.find(ctx, bson.M{"is_active": true})
}

func (r *mongoTreatmentRepo) find(ctx context.Context, filter bson.M) ([]models.RecurringTreatment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query treatments: %w", err)
	}
	defer cursor.Close(ctx)

	var treatments []models.RecurringTreatment
	if err := cursor.All(ctx, &treatments); err != nil {
		return nil, fmt.Errorf("failed to decode treatments: %w", err)
	}
	return treatments, nil
}
