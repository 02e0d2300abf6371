// Package profile serves a driver's contacts, medical record, device
// settings, privacy and notification preferences.
package profile

import (
	"context"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/gin-gonic/gin"
)

// Store is the persistence port for profile data. Getters return nil when
// the driver has no row yet. Upserts are keyed on driver_id and leave
// stored values in place for nil input fields.
type Store interface {
	ListContacts(ctx context.Context, driverID int64) ([]v1.Contact, error)
	CreateContact(ctx context.Context, driverID int64, in v1.ContactInput) (*v1.Contact, error)

	GetMedical(ctx context.Context, driverID int64) (*v1.Medical, error)
	UpsertMedical(ctx context.Context, driverID int64, in v1.MedicalInput) (*v1.Medical, error)

	GetSettings(ctx context.Context, driverID int64) (*v1.Settings, error)
	UpsertSettings(ctx context.Context, driverID int64, in v1.SettingsInput) (*v1.Settings, error)

	GetPrivacy(ctx context.Context, driverID int64) (*v1.Privacy, error)
	UpsertPrivacy(ctx context.Context, driverID int64, in v1.PrivacyInput) (*v1.Privacy, error)

	GetNotifications(ctx context.Context, driverID int64) (*v1.Notification, error)
	UpsertNotifications(ctx context.Context, driverID int64, in v1.NotificationInput) (*v1.Notification, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	if store == nil {
		panic("profile: store must not be nil")
	}
	return &Service{store: store}
}

func (s *Service) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/v1/drivers/:driver_id/profile")

	g.GET("/contacts", s.HandleListContacts)
	g.POST("/contacts", s.HandleCreateContact)

	g.GET("/medical", getHandler("Medical record not found", "Failed to fetch medical record", s.store.GetMedical))
	g.PATCH("/medical", upsertHandler("Failed to save medical record", (*v1.MedicalInput).Validate, s.store.UpsertMedical))

	g.GET("/settings", getHandler("Settings not found", "Failed to fetch settings", s.store.GetSettings))
	g.POST("/settings", upsertHandler("Failed to save settings", (*v1.SettingsInput).Validate, s.store.UpsertSettings))

	g.GET("/privacy", getHandler("Privacy settings not found", "Failed to fetch privacy settings", s.store.GetPrivacy))
	g.POST("/privacy", upsertHandler("Failed to save privacy settings", (*v1.PrivacyInput).Validate, s.store.UpsertPrivacy))

	g.GET("/notifications", getHandler("Notification settings not found", "Failed to fetch notification settings", s.store.GetNotifications))
	g.POST("/notifications", upsertHandler("Failed to save notification settings", (*v1.NotificationInput).Validate, s.store.UpsertNotifications))
}
