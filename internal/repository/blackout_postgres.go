package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

type BlackoutRepo struct {
	db *pgxpool.Pool
}

func NewBlackoutRepository(db *pgxpool.Pool) BlackoutRepository {
	return &BlackoutRepo{db: db}
}

func (r *BlackoutRepo) Create(ctx context.Context, dto domain.CreateBlackoutDTO) (int64, error) {
	query := `
		INSERT INTO blackout_periods (professional_id, start_datetime, end_datetime, reason, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(
		ctx,
		query,
		dto.ProfessionalID,
		dto.StartDateTime,
		dto.EndDateTime,
		dto.Reason,
	).Scan(&id)

	if err != nil {
		return 0, domain.NewTransportError("error al crear el bloqueo", err)
	}

	return id, nil
}

func (r *BlackoutRepo) GetByID(ctx context.Context, id int64) (*domain.BlackoutPeriod, error) {
	query := `
		SELECT id, professional_id, start_datetime, end_datetime, reason, created_at
		FROM blackout_periods
		WHERE id = $1
	`

	var b domain.BlackoutPeriod
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.ProfessionalID,
		&b.StartDateTime,
		&b.EndDateTime,
		&b.Reason,
		&b.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewTransportError("error al obtener el bloqueo", err)
	}

	return &b, nil
}

func (r *BlackoutRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM blackout_periods WHERE id = $1`, id)
	if err != nil {
		return domain.NewTransportError("error al eliminar el bloqueo", err)
	}
	return nil
}

func (r *BlackoutRepo) List(ctx context.Context, filter domain.BlackoutFilter) ([]domain.BlackoutPeriod, error) {
	query := `
		SELECT id, professional_id, start_datetime, end_datetime, reason, created_at
		FROM blackout_periods
		WHERE 1=1
	`

	var args []interface{}
	argPos := 1

	if filter.ProfessionalID != nil {
		query += fmt.Sprintf(" AND professional_id = $%d", argPos)
		args = append(args, *filter.ProfessionalID)
		argPos++
	}

	// Solapamiento semiabierto con el rango consultado.
	if filter.To != nil {
		query += fmt.Sprintf(" AND start_datetime < $%d", argPos)
		args = append(args, *filter.To)
		argPos++
	}

	if filter.From != nil {
		query += fmt.Sprintf(" AND end_datetime > $%d", argPos)
		args = append(args, *filter.From)
		argPos++
	}

	query += ` ORDER BY start_datetime`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.NewTransportError("error al obtener los bloqueos", err)
	}
	defer rows.Close()

	var blackouts []domain.BlackoutPeriod
	for rows.Next() {
		var b domain.BlackoutPeriod
		err := rows.Scan(
			&b.ID,
			&b.ProfessionalID,
			&b.StartDateTime,
			&b.EndDateTime,
			&b.Reason,
			&b.CreatedAt,
		)
		if err != nil {
			return nil, domain.NewTransportError("error al escanear el bloqueo", err)
		}
		blackouts = append(blackouts, b)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewTransportError("error al procesar los bloqueos", err)
	}

	return blackouts, nil
}
