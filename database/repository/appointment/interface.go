// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"salonbook/database"
	"salonbook/models"
)

// AppointmentRepository is the persistent store contract the scheduling
// core depends on: create/replace/delete by id plus an existence check.
type AppointmentRepository interface {
	List(ctx context.Context) ([]models.Appointment, error)
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)
	ListByEmployeeDate(ctx context.Context, employeeID int, date string) ([]models.Appointment, error)
	Insert(ctx context.Context, a models.Appointment) error
	Replace(ctx context.Context, a models.Appointment) error
	Delete(ctx context.Context, id string) error
	ExistsID(ctx context.Context, id string) (bool, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a MongoDB-backed AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database("salonbook")
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
