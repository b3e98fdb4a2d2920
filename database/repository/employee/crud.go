// File: database/repository/employee/crud.go
package employeeRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"salonbook/models"
)

const queryTimeout = 5 * time.Second

func (r *mongoEmployeeRepo) List(ctx context.Context) ([]models.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}
	return employees, nil
}

func (r *mongoEmployeeRepo) GetByID(ctx context.Context, id int) (*models.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var employee models.Employee
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&employee); err != nil {
		return nil, err
	}
	return &employee, nil
}
