package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

type ServiceRepo struct {
	db *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) ServiceRepository {
	return &ServiceRepo{db: db}
}

func (r *ServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	query := `
		SELECT id, name, duration_minutes, buffer_minutes, eligible_patient_type_ids, active, created_at
		FROM services
		WHERE id = $1
	`

	var s domain.Service
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.Name,
		&s.DurationMinutes,
		&s.BufferMinutes,
		&s.EligiblePatientTypeIDs,
		&s.Active,
		&s.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewTransportError("error al obtener el servicio", err)
	}

	return &s, nil
}

func (r *ServiceRepo) List(ctx context.Context, activeOnly bool) ([]domain.Service, error) {
	query := `
		SELECT id, name, duration_minutes, buffer_minutes, eligible_patient_type_ids, active, created_at
		FROM services
	`
	if activeOnly {
		query += ` WHERE active = true`
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, domain.NewTransportError("error al obtener los servicios", err)
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		var s domain.Service
		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.DurationMinutes,
			&s.BufferMinutes,
			&s.EligiblePatientTypeIDs,
			&s.Active,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, domain.NewTransportError("error al escanear el servicio", err)
		}
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewTransportError("error al procesar los servicios", err)
	}

	return services, nil
}
