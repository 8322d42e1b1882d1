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

type TemplateRepo struct {
	db *pgxpool.Pool
}

func NewTemplateRepository(db *pgxpool.Pool) TemplateRepository {
	return &TemplateRepo{db: db}
}

const templateColumns = `id, professional_id, place_id, service_id, weekday, start_time, end_time, valid_from, valid_until, created_at, updated_at`

func scanTemplate(row pgx.Row) (*domain.AvailabilityTemplate, error) {
	var t domain.AvailabilityTemplate
	err := row.Scan(
		&t.ID,
		&t.ProfessionalID,
		&t.PlaceID,
		&t.ServiceID,
		&t.Weekday,
		&t.StartTime,
		&t.EndTime,
		&t.ValidFrom,
		&t.ValidUntil,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TemplateRepo) Create(ctx context.Context, template domain.AvailabilityTemplate) (int64, error) {
	query := `
		INSERT INTO availability_templates (
			professional_id, place_id, service_id, weekday, start_time, end_time, valid_from, valid_until, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(
		ctx,
		query,
		template.ProfessionalID,
		template.PlaceID,
		template.ServiceID,
		template.Weekday,
		template.StartTime,
		template.EndTime,
		template.ValidFrom,
		template.ValidUntil,
	).Scan(&id)

	if err != nil {
		return 0, domain.NewTransportError("error al crear la plantilla", err)
	}

	return id, nil
}

func (r *TemplateRepo) CreateMany(ctx context.Context, templates []domain.AvailabilityTemplate) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, domain.NewTransportError("error al iniciar la transacción", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO availability_templates (
			professional_id, place_id, service_id, weekday, start_time, end_time, valid_from, valid_until, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`

	for _, t := range templates {
		_, err := tx.Exec(
			ctx,
			query,
			t.ProfessionalID,
			t.PlaceID,
			t.ServiceID,
			t.Weekday,
			t.StartTime,
			t.EndTime,
			t.ValidFrom,
			t.ValidUntil,
		)
		if err != nil {
			return 0, domain.NewTransportError("error al crear las plantillas", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, domain.NewTransportError("error al confirmar la transacción", err)
	}

	return len(templates), nil
}

func (r *TemplateRepo) GetByID(ctx context.Context, id int64) (*domain.AvailabilityTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM availability_templates WHERE id = $1`

	template, err := scanTemplate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewTransportError("error al obtener la plantilla", err)
	}

	return template, nil
}

func (r *TemplateRepo) List(ctx context.Context, filter domain.TemplateFilter) ([]domain.AvailabilityTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM availability_templates WHERE 1=1`

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

	if filter.Weekday != nil {
		query += fmt.Sprintf(" AND weekday = $%d", argPos)
		args = append(args, *filter.Weekday)
		argPos++
	}

	if filter.ActiveOn != nil {
		query += fmt.Sprintf(" AND (valid_from IS NULL OR valid_from <= $%d)", argPos)
		query += fmt.Sprintf(" AND (valid_until IS NULL OR valid_until >= $%d)", argPos)
		args = append(args, *filter.ActiveOn)
		argPos++
	}

	query += ` ORDER BY weekday, start_time, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.NewTransportError("error al obtener las plantillas", err)
	}
	defer rows.Close()

	var templates []domain.AvailabilityTemplate
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			return nil, domain.NewTransportError("error al escanear la plantilla", err)
		}
		templates = append(templates, *template)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewTransportError("error al procesar las plantillas", err)
	}

	return templates, nil
}

func (r *TemplateRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM availability_templates WHERE id = $1`, id)
	if err != nil {
		return domain.NewTransportError("error al eliminar la plantilla", err)
	}
	return nil
}

func (r *TemplateRepo) DeleteSeries(ctx context.Context, series domain.DeleteSeriesDTO) (int64, error) {
	query := `
		DELETE FROM availability_templates
		WHERE professional_id = $1 AND place_id = $2 AND weekday = $3 AND start_time = $4 AND end_time = $5
	`

	tag, err := r.db.Exec(
		ctx,
		query,
		series.ProfessionalID,
		series.PlaceID,
		series.Weekday,
		series.StartTime,
		series.EndTime,
	)
	if err != nil {
		return 0, domain.NewTransportError("error al eliminar la serie", err)
	}

	return tag.RowsAffected(), nil
}

func (r *TemplateRepo) ExcludeDate(ctx context.Context, template domain.AvailabilityTemplate, date time.Time) error {
	dayBefore := date.AddDate(0, 0, -1)
	dayAfter := date.AddDate(0, 0, 1)

	startsOnDate := template.ValidFrom != nil && sameDay(*template.ValidFrom, date)
	endsOnDate := template.ValidUntil != nil && sameDay(*template.ValidUntil, date)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.NewTransportError("error al iniciar la transacción", err)
	}
	defer tx.Rollback(ctx)

	switch {
	case startsOnDate:
		// La ventana empieza en la fecha excluida: basta retrasar el inicio.
		_, err = tx.Exec(ctx,
			`UPDATE availability_templates SET valid_from = $1, updated_at = NOW() WHERE id = $2`,
			dayAfter, template.ID,
		)
	case endsOnDate:
		// La ventana termina en la fecha excluida: basta adelantar el fin.
		_, err = tx.Exec(ctx,
			`UPDATE availability_templates SET valid_until = $1, updated_at = NOW() WHERE id = $2`,
			dayBefore, template.ID,
		)
	default:
		// La fecha cae dentro de la ventana: la fila original se cierra el
		// día anterior y una copia retoma la serie el día siguiente.
		_, err = tx.Exec(ctx,
			`UPDATE availability_templates SET valid_until = $1, updated_at = NOW() WHERE id = $2`,
			dayBefore, template.ID,
		)
		if err == nil {
			_, err = tx.Exec(ctx,
				`INSERT INTO availability_templates (
					professional_id, place_id, service_id, weekday, start_time, end_time, valid_from, valid_until, created_at, updated_at
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())`,
				template.ProfessionalID,
				template.PlaceID,
				template.ServiceID,
				template.Weekday,
				template.StartTime,
				template.EndTime,
				dayAfter,
				template.ValidUntil,
			)
		}
	}

	if err != nil {
		return domain.NewTransportError("error al excluir la fecha de la plantilla", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.NewTransportError("error al confirmar la transacción", err)
	}

	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
