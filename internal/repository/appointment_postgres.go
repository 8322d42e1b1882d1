package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

type AppointmentRepo struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) AppointmentRepository {
	return &AppointmentRepo{db: db}
}

const appointmentColumns = `id, professional_id, place_id, service_id, patient_type_id, date, start_time, end_time, status, patient_name, created_at, updated_at`

func scanAppointment(row pgx.Row) (*domain.Appointment, error) {
	var a domain.Appointment
	err := row.Scan(
		&a.ID,
		&a.ProfessionalID,
		&a.PlaceID,
		&a.ServiceID,
		&a.PatientTypeID,
		&a.Date,
		&a.StartTime,
		&a.EndTime,
		&a.Status,
		&a.PatientName,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepo) Create(ctx context.Context, dto domain.CreateAppointmentDTO, status domain.AppointmentStatus) (int64, error) {
	query := `
		INSERT INTO appointments (
			professional_id, place_id, service_id, patient_type_id, date, start_time, end_time, status, patient_name, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(
		ctx,
		query,
		dto.ProfessionalID,
		dto.PlaceID,
		dto.ServiceID,
		dto.PatientTypeID,
		dto.Date,
		dto.StartTime,
		dto.EndTime,
		status,
		dto.PatientName,
	).Scan(&id)

	if err != nil {
		return 0, domain.NewTransportError("error al crear la cita", err)
	}

	return id, nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	appointment, err := scanAppointment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewTransportError("error al obtener la cita", err)
	}

	return appointment, nil
}

func (r *AppointmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	query := `UPDATE appointments SET status = $1, updated_at = NOW() WHERE id = $2`

	_, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return domain.NewTransportError("error al actualizar el estado de la cita", err)
	}

	return nil
}

func (r *AppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE 1=1`

	var args []interface{}
	argPos := 1

	if filter.ProfessionalID != nil {
		query += fmt.Sprintf(" AND professional_id = $%d", argPos)
		args = append(args, *filter.ProfessionalID)
		argPos++
	}

	if filter.PlaceID != nil {
		query += fmt.Sprintf(" AND place_id = $%d", argPos)
		args = append(args, *filter.PlaceID)
		argPos++
	}

	if filter.Date != nil {
		if filter.DateTo != nil {
			query += fmt.Sprintf(" AND date >= $%d AND date <= $%d", argPos, argPos+1)
			args = append(args, *filter.Date, *filter.DateTo)
			argPos += 2
		} else {
			query += fmt.Sprintf(" AND date = $%d", argPos)
			args = append(args, *filter.Date)
			argPos++
		}
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	if filter.ExcludeStatus != nil {
		query += fmt.Sprintf(" AND status != $%d", argPos)
		args = append(args, *filter.ExcludeStatus)
		argPos++
	}

	query += ` ORDER BY date, start_time`

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.NewTransportError("error al obtener las citas", err)
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, domain.NewTransportError("error al escanear la cita", err)
		}
		appointments = append(appointments, *appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewTransportError("error al procesar las citas", err)
	}

	return appointments, nil
}

func (r *AppointmentRepo) HasOverlap(ctx context.Context, professionalID int64, date time.Time, startTime, endTime string) (bool, error) {
	// Intervalos semiabiertos sobre horas HH:MM; los estados cancelados y
	// rechazados no ocupan agenda.
	query := `
		SELECT COUNT(*)
		FROM appointments
		WHERE professional_id = $1
		AND date = $2
		AND status NOT IN ('cancelled', 'rejected')
		AND start_time < $4
		AND end_time > $3
	`

	var count int
	err := r.db.QueryRow(ctx, query, professionalID, date, startTime, endTime).Scan(&count)
	if err != nil {
		return false, domain.NewTransportError("error al comprobar solapamientos", err)
	}

	return count > 0, nil
}
