package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/partnerlink/backend/internal/models"
)

type EventRepo struct {
	pool *pgxpool.Pool
}

func NewEventRepo(pool *pgxpool.Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

const eventColumns = `id, creator_id, title, platform, event_date, details,
	requires_payment, payment_amount, image_urls, status, created_at, updated_at`

func scanEvent(row pgx.Row) (*models.Event, error) {
	var e models.Event
	err := row.Scan(&e.ID, &e.CreatorID, &e.Title, &e.Platform, &e.EventDate,
		&e.Details, &e.RequiresPayment, &e.PaymentAmount, &e.ImageURLs,
		&e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepo) Create(ctx context.Context, e *models.Event) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO events (creator_id, title, platform, event_date, details, requires_payment, payment_amount, image_urls, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, e.CreatorID, e.Title, e.Platform, e.EventDate, e.Details,
		e.RequiresPayment, e.PaymentAmount, e.ImageURLs, e.Status,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *EventRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	return scanEvent(r.pool.QueryRow(ctx, `
		SELECT `+eventColumns+` FROM events WHERE id = $1
	`, id))
}

func (r *EventRepo) GetOrNil(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	e, err := r.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

func (r *EventRepo) Update(ctx context.Context, e *models.Event) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE events SET title = $1, platform = $2, event_date = $3,
		       details = $4, requires_payment = $5, payment_amount = $6,
		       image_urls = $7, status = $8, updated_at = now()
		WHERE id = $9
	`, e.Title, e.Platform, e.EventDate, e.Details, e.RequiresPayment,
		e.PaymentAmount, e.ImageURLs, e.Status, e.ID)
	return err
}

func (r *EventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	return err
}

func (r *EventRepo) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events WHERE creator_id = $1
		ORDER BY event_date
	`, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *EventRepo) ListDueWithin(ctx context.Context, from, to string) ([]models.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE event_date >= $1 AND event_date <= $2
		ORDER BY event_date
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}
