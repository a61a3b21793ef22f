package service

import (
	"fmt"

	"campusinfo/internal/models"
)

// RequireAdmin is the single capability check consulted by every admin-gated
// operation. Role policy lives here and nowhere else.
func RequireAdmin(identity models.Identity) error {
	if !identity.IsAdmin() {
		return fmt.Errorf("%w: Admin access required", ErrForbidden)
	}
	return nil
}
