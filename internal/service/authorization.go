package service

import (
	"drivetube-be/internal/pkg/apperr"

	"github.com/google/uuid"
)

// authorizeOwner is the single ownership predicate for resource mutation and
// reads of other users' data. Every handler path that needs an ownership
// decision goes through here rather than comparing ids inline.
func authorizeOwner(ownerId, callerId uuid.UUID) error {
	if ownerId != callerId {
		return apperr.Forbidden(apperr.MsgAccessDenied)
	}
	return nil
}
