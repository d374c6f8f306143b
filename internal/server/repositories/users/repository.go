package users

import (
	"context"

	"github.com/puptrack/puptrack/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByIdentifier(ctx context.Context, identifier string) (*models.User, error)
}
