// File: database/repository/employee/interface.go
package employeeRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"salonbook/database"
	"salonbook/models"
)

// EmployeeRepository exposes read access to salon staff records.
type EmployeeRepository interface {
	List(ctx context.Context) ([]models.Employee, error)
	GetByID(ctx context.Context, id int) (*models.Employee, error)
}

type mongoEmployeeRepo struct {
	coll *mongo.Collection
}

// NewMongoEmployeeRepo constructs a MongoDB-backed EmployeeRepository.
func NewMongoEmployeeRepo() EmployeeRepository {
	db := database.MongoClient.Database("salonbook")
	return &mongoEmployeeRepo{
		coll: db.Collection("employees"),
	}
}
