package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

type PlaceRepo struct {
	db *pgxpool.Pool
}

func NewPlaceRepository(db *pgxpool.Pool) PlaceRepository {
	return &PlaceRepo{db: db}
}

func (r *PlaceRepo) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	query := `SELECT id, name, address, created_at FROM places WHERE id = $1`

	var p domain.Place
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Address, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewTransportError("error al obtener la sede", err)
	}

	return &p, nil
}

func (r *PlaceRepo) List(ctx context.Context) ([]domain.Place, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, address, created_at FROM places ORDER BY name`)
	if err != nil {
		return nil, domain.NewTransportError("error al obtener las sedes", err)
	}
	defer rows.Close()

	var places []domain.Place
	for rows.Next() {
		var p domain.Place
		if err := rows.Scan(&p.ID, &p.Name, &p.Address, &p.CreatedAt); err != nil {
			return nil, domain.NewTransportError("error al escanear la sede", err)
		}
		places = append(places, p)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewTransportError("error al procesar las sedes", err)
	}

	return places, nil
}
