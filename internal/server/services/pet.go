package services

import (
	"context"
	"database/sql"
	"encoding/base64"
	"fmt"

	"github.com/puptrack/puptrack/internal/common"
	"github.com/puptrack/puptrack/internal/server/models"
	"github.com/puptrack/puptrack/internal/server/repositories/repomanager"
)

// PetService registers pets for existing users. Images arrive base64-encoded
// from the mobile client and are stored decoded.
type PetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPetService(db *sql.DB, m repomanager.RepositoryManager) *PetService {
	return &PetService{db: db, repomanager: m}
}

// Register persists a pet owned by userID. imageBase64 may be empty.
func (s *PetService) Register(ctx context.Context, name, imageBase64 string, userID int64) (*models.Pet, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: pet name is required", common.ErrorValidation)
	}
	if userID <= 0 {
		return nil, fmt.Errorf("%w: owner id is required", common.ErrorValidation)
	}

	var image []byte
	if imageBase64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(imageBase64)
		if err != nil {
			return nil, fmt.Errorf("%w: image is not valid base64", common.ErrorValidation)
		}
		image = decoded
	}

	repo := s.repomanager.Pets(s.db)
	pet, err := repo.Create(ctx, &models.Pet{Name: name, Image: image, UserID: userID})
	if err != nil {
		if ctx.Err() != nil {
			return nil, common.ErrTimeout
		}
		return nil, common.ErrorInternal
	}

	return pet, nil
}
