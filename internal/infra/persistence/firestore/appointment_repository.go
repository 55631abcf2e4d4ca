package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domainerrors "rebook/internal/domain/errors"
	"rebook/internal/domain/entity"
	"rebook/internal/domain/repository"
	"rebook/internal/infra/persistence/model"
)

// appointmentRepository implements the repository.AppointmentRepository interface.
type appointmentRepository struct {
	client *firestore.Client
}

// NewAppointmentRepository is the constructor for appointmentRepository.
func NewAppointmentRepository(client *firestore.Client) repository.AppointmentRepository {
	return &appointmentRepository{
		client: client,
	}
}

// FindByID retrieves the current appointment document.
func (repo *appointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	snap, err := repo.client.Collection(collectionAppointments).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domainerrors.ErrAppointmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find appointment by ID")
	}

	var appointmentM model.AppointmentModel
	if err := snap.DataTo(&appointmentM); err != nil {
		return nil, errors.Wrap(err, "failed to decode appointment")
	}

	return toAppointmentDomain(snap.Ref.ID, &appointmentM), nil
}

// MarkReminderSent sets the reminder_sent flag. The write is a merge so no
// other field is touched.
func (repo *appointmentRepository) MarkReminderSent(ctx context.Context, id string) error {
	_, err := repo.client.Collection(collectionAppointments).Doc(id).Set(ctx, map[string]any{
		"reminder_sent": true,
	}, firestore.MergeAll)
	if err != nil {
		return errors.Wrap(err, "failed to mark reminder sent")
	}

	return nil
}

// --- Mapper Functions ---

// toAppointmentDomain converts a Firestore AppointmentModel to a domain Appointment entity.
func toAppointmentDomain(id string, data *model.AppointmentModel) *entity.Appointment {
	if data == nil {
		return nil
	}

	return &entity.Appointment{
		ID:            id,
		BrandID:       data.BrandID,
		CustomerID:    data.CustomerID,
		StaffID:       data.StaffID,
		LocationID:    data.LocationID,
		StartTime:     data.StartTime,
		TotalPrice:    data.TotalPrice,
		ServiceIDs:    data.ServiceIDs,
		Status:        entity.AppointmentStatus(data.Status),
		NoShowCounted: data.NoShowCounted,
		ReminderSent:  data.ReminderSent,
	}
}
