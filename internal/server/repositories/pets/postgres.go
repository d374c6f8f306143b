package pets

import (
	"context"
	"fmt"

	"github.com/puptrack/puptrack/internal/dbx"
	"github.com/puptrack/puptrack/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, pet *models.Pet) (*models.Pet, error) {

	query :=
		`INSERT INTO pets (name, image, user_id)
         VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		pet.Name, pet.Image, pet.UserID).Scan(&pet.ID, &pet.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return pet, nil
}

func (r *PostgresRepository) GetByUser(ctx context.Context, userID int64) ([]*models.Pet, error) {
	query :=
		`SELECT id, name, image, user_id, created_at FROM pets
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Pet
	for rows.Next() {
		pet := &models.Pet{}
		if err := rows.Scan(&pet.ID, &pet.Name, &pet.Image, &pet.UserID, &pet.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, pet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
