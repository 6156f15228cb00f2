package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/partnerlink/backend/internal/models"
)

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

const campaignColumns = `id, creator_id, title, platform, due_date, requirements,
	promoted_url, image_urls, status, created_at, updated_at`

func scanCampaign(row pgx.Row) (*models.Campaign, error) {
	var c models.Campaign
	err := row.Scan(&c.ID, &c.CreatorID, &c.Title, &c.Platform, &c.DueDate,
		&c.Requirements, &c.PromotedURL, &c.ImageURLs, &c.Status,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (creator_id, title, platform, due_date, requirements, promoted_url, image_urls, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, c.CreatorID, c.Title, c.Platform, c.DueDate, c.Requirements,
		c.PromotedURL, c.ImageURLs, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	return scanCampaign(r.pool.QueryRow(ctx, `
		SELECT `+campaignColumns+` FROM campaigns WHERE id = $1
	`, id))
}

// GetOrNil maps pgx.ErrNoRows to (nil, nil) for the task aggregator, which
// treats a vanished linked record as skippable rather than an error.
func (r *CampaignRepo) GetOrNil(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	c, err := r.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

func (r *CampaignRepo) Update(ctx context.Context, c *models.Campaign) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE campaigns SET title = $1, platform = $2, due_date = $3,
		       requirements = $4, promoted_url = $5, image_urls = $6,
		       status = $7, updated_at = now()
		WHERE id = $8
	`, c.Title, c.Platform, c.DueDate, c.Requirements, c.PromotedURL,
		c.ImageURLs, c.Status, c.ID)
	return err
}

func (r *CampaignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	return err
}

func (r *CampaignRepo) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+campaignColumns+`
		FROM campaigns WHERE creator_id = $1
		ORDER BY created_at DESC
	`, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, *c)
	}
	return campaigns, rows.Err()
}

// ListDueWithin returns campaigns whose due date falls inside [from, to],
// used by the reminder worker. Dates are YYYY-MM-DD strings so lexicographic
// comparison matches chronological order.
func (r *CampaignRepo) ListDueWithin(ctx context.Context, from, to string) ([]models.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+campaignColumns+`
		FROM campaigns
		WHERE due_date >= $1 AND due_date <= $2 AND status != 'live'
		ORDER BY due_date
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, *c)
	}
	return campaigns, rows.Err()
}
