package shipping

import (
	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/models"
)

// checkUnlocked rejects mutation once the shipment has reached the terminal
// COMPLETED status. It must run before any reference re-resolution so a
// locked record fails the same way no matter what else the request carries.
func checkUnlocked(s *models.Shipment) error {
	if s.Status == models.ShipmentCompleted {
		return apperr.Locked(s.ID)
	}
	return nil
}
