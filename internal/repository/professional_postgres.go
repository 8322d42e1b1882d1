package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

type ProfessionalRepo struct {
	db *pgxpool.Pool
}

func NewProfessionalRepository(db *pgxpool.Pool) ProfessionalRepository {
	return &ProfessionalRepo{db: db}
}

func (r *ProfessionalRepo) Create(ctx context.Context, dto domain.CreateProfessionalDTO) (int64, error) {
	query := `
		INSERT INTO professionals (full_name, specialty, phone, active, created_at)
		VALUES ($1, $2, $3, true, NOW())
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, dto.FullName, dto.Specialty, dto.Phone).Scan(&id)
	if err != nil {
		return 0, domain.NewTransportError("error al crear el profesional", err)
	}

	return id, nil
}

func (r *ProfessionalRepo) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	query := `
		SELECT id, full_name, specialty, phone, active, created_at
		FROM professionals
		WHERE id = $1
	`

	var p domain.Professional
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.FullName,
		&p.Specialty,
		&p.Phone,
		&p.Active,
		&p.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewTransportError("error al obtener el profesional", err)
	}

	return &p, nil
}

func (r *ProfessionalRepo) Update(ctx context.Context, id int64, dto domain.UpdateProfessionalDTO) error {
	query := `UPDATE professionals SET`

	var sets []string
	var args []interface{}
	argPos := 1

	if dto.FullName != nil {
		sets = append(sets, fmt.Sprintf(" full_name = $%d", argPos))
		args = append(args, *dto.FullName)
		argPos++
	}
	if dto.Specialty != nil {
		sets = append(sets, fmt.Sprintf(" specialty = $%d", argPos))
		args = append(args, *dto.Specialty)
		argPos++
	}
	if dto.Phone != nil {
		sets = append(sets, fmt.Sprintf(" phone = $%d", argPos))
		args = append(args, *dto.Phone)
		argPos++
	}
	if dto.Active != nil {
		sets = append(sets, fmt.Sprintf(" active = $%d", argPos))
		args = append(args, *dto.Active)
		argPos++
	}

	if len(sets) == 0 {
		return nil
	}

	for i, set := range sets {
		if i > 0 {
			query += ","
		}
		query += set
	}
	query += fmt.Sprintf(" WHERE id = $%d", argPos)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return domain.NewTransportError("error al actualizar el profesional", err)
	}

	return nil
}

func (r *ProfessionalRepo) List(ctx context.Context, search string) ([]domain.Professional, error) {
	query := `
		SELECT id, full_name, specialty, phone, active, created_at
		FROM professionals
		WHERE 1=1
	`

	var args []interface{}
	if search != "" {
		query += ` AND full_name ILIKE $1`
		args = append(args, "%"+search+"%")
	}

	query += ` ORDER BY full_name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.NewTransportError("error al obtener los profesionales", err)
	}
	defer rows.Close()

	var professionals []domain.Professional
	for rows.Next() {
		var p domain.Professional
		err := rows.Scan(
			&p.ID,
			&p.FullName,
			&p.Specialty,
			&p.Phone,
			&p.Active,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, domain.NewTransportError("error al escanear el profesional", err)
		}
		professionals = append(professionals, p)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewTransportError("error al procesar los profesionales", err)
	}

	return professionals, nil
}
