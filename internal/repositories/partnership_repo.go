package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/partnerlink/backend/internal/models"
)

type PartnershipRepo struct {
	pool *pgxpool.Pool
}

func NewPartnershipRepo(pool *pgxpool.Pool) *PartnershipRepo {
	return &PartnershipRepo{pool: pool}
}

const requestColumns = `id, requester_id, creator_id, type, campaign_id, event_id,
	status, content, tags, photo_url, agree_to_pay, created_at, updated_at`

func scanRequest(row pgx.Row) (*models.PartnershipRequest, error) {
	var r models.PartnershipRequest
	err := row.Scan(&r.ID, &r.RequesterID, &r.CreatorID, &r.Type, &r.CampaignID,
		&r.EventID, &r.Status, &r.Content, &r.Tags, &r.PhotoURL, &r.AgreeToPay,
		&r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *PartnershipRepo) CreateRequest(ctx context.Context, req *models.PartnershipRequest) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO partnership_requests (requester_id, creator_id, type, campaign_id, event_id, status, content, tags, photo_url, agree_to_pay)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, req.RequesterID, req.CreatorID, req.Type, req.CampaignID, req.EventID,
		req.Status, req.Content, req.Tags, req.PhotoURL, req.AgreeToPay,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

func (r *PartnershipRepo) GetRequest(ctx context.Context, id uuid.UUID) (*models.PartnershipRequest, error) {
	return scanRequest(r.pool.QueryRow(ctx, `
		SELECT `+requestColumns+` FROM partnership_requests WHERE id = $1
	`, id))
}

func (r *PartnershipRepo) UpdateRequestStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE partnership_requests SET status = $1, updated_at = now() WHERE id = $2
	`, status, id)
	return err
}

func (r *PartnershipRepo) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]models.PartnershipRequest, error) {
	return r.listRequests(ctx, `requester_id = $1`, requesterID)
}

func (r *PartnershipRepo) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.PartnershipRequest, error) {
	return r.listRequests(ctx, `creator_id = $1`, creatorID)
}

func (r *PartnershipRepo) listRequests(ctx context.Context, where string, arg any) ([]models.PartnershipRequest, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+requestColumns+`
		FROM partnership_requests WHERE `+where+`
		ORDER BY created_at DESC
	`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.PartnershipRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

const partnershipColumns = `id, partner_id, creator_id, type, campaign_id, event_id,
	status, payment_status, created_at, updated_at`

func scanPartnership(row pgx.Row) (*models.Partnership, error) {
	var p models.Partnership
	err := row.Scan(&p.ID, &p.PartnerID, &p.CreatorID, &p.Type, &p.CampaignID,
		&p.EventID, &p.Status, &p.PaymentStatus, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PartnershipRepo) CreatePartnership(ctx context.Context, p *models.Partnership) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO partnerships (partner_id, creator_id, type, campaign_id, event_id, status, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, p.PartnerID, p.CreatorID, p.Type, p.CampaignID, p.EventID, p.Status, p.PaymentStatus,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PartnershipRepo) ListPartnershipsByPartner(ctx context.Context, partnerID uuid.UUID) ([]models.Partnership, error) {
	return r.listPartnerships(ctx, `partner_id = $1`, partnerID)
}

func (r *PartnershipRepo) ListPartnershipsByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.Partnership, error) {
	return r.listPartnerships(ctx, `creator_id = $1`, creatorID)
}

func (r *PartnershipRepo) listPartnerships(ctx context.Context, where string, arg any) ([]models.Partnership, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+partnershipColumns+`
		FROM partnerships WHERE `+where+`
		ORDER BY created_at DESC
	`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var partnerships []models.Partnership
	for rows.Next() {
		p, err := scanPartnership(rows)
		if err != nil {
			return nil, err
		}
		partnerships = append(partnerships, *p)
	}
	return partnerships, rows.Err()
}

// HasPendingRequest reports whether the requester already has a pending
// request against the given target.
func (r *PartnershipRepo) HasPendingRequest(ctx context.Context, requesterID uuid.UUID, reqType string, targetID uuid.UUID) (bool, error) {
	column := "campaign_id"
	if reqType == models.RequestTypeEvent {
		column = "event_id"
	}
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM partnership_requests
			WHERE requester_id = $1 AND `+column+` = $2 AND status = 'pending'
		)
	`, requesterID, targetID).Scan(&exists)
	return exists, err
}
