package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/lingonote/lingonote/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create creates a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID
	FindByID(ctx context.Context, id uint) (*entities.Meeting, error)

	// FindByUser retrieves the meetings owned by a user, newest first
	FindByUser(ctx context.Context, userID uuid.UUID, filters MeetingFilters) ([]*entities.Meeting, error)

	// Delete removes a meeting together with its translations
	Delete(ctx context.Context, id uint) error
}

// MeetingFilters represents pagination options for listing meetings.
// Zero Limit means no limit.
type MeetingFilters struct {
	Limit  int
	Offset int
}
