package pets

import (
	"context"

	"github.com/puptrack/puptrack/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, pet *models.Pet) (*models.Pet, error)
	GetByUser(ctx context.Context, userID int64) ([]*models.Pet, error)
}
