package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/partnerlink/backend/internal/models"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, email, full_name, company_name, industry, custom_industry,
	career_experience, location, social_media_platform, social_media_handle,
	bio, goals, profile_photo_url, is_profile_complete, created_at, updated_at`

func scanUser(row pgx.Row) (*models.UserProfile, error) {
	var u models.UserProfile
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.CompanyName, &u.Industry,
		&u.CustomIndustry, &u.CareerExperience, &u.Location, &u.SocialMediaPlatform,
		&u.SocialMediaHandle, &u.Bio, &u.Goals, &u.ProfilePhotoURL,
		&u.IsProfileComplete, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(ctx context.Context, email, passwordHash, fullName string) (*models.UserProfile, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, full_name)
		VALUES ($1, $2, $3)
		RETURNING `+userColumns+`
	`, email, passwordHash, fullName))
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE id = $1
	`, id))
}

// GetByEmail returns the profile together with the stored password hash for
// login verification. The hash never leaves the repository otherwise.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.UserProfile, string, error) {
	var u models.UserProfile
	var hash string
	err := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`, password_hash FROM users WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.FullName, &u.CompanyName, &u.Industry,
		&u.CustomIndustry, &u.CareerExperience, &u.Location, &u.SocialMediaPlatform,
		&u.SocialMediaHandle, &u.Bio, &u.Goals, &u.ProfilePhotoURL,
		&u.IsProfileComplete, &u.CreatedAt, &u.UpdatedAt, &hash)
	if err != nil {
		return nil, "", err
	}
	return &u, hash, nil
}

func (r *UserRepo) UpdateProfile(ctx context.Context, u *models.UserProfile) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users SET full_name = $1, company_name = $2, industry = $3,
		       custom_industry = $4, career_experience = $5, location = $6,
		       social_media_platform = $7, social_media_handle = $8,
		       bio = $9, goals = $10, profile_photo_url = $11,
		       is_profile_complete = $12, updated_at = now()
		WHERE id = $13
	`, u.FullName, u.CompanyName, u.Industry, u.CustomIndustry, u.CareerExperience,
		u.Location, u.SocialMediaPlatform, u.SocialMediaHandle, u.Bio, u.Goals,
		u.ProfilePhotoURL, u.IsProfileComplete, u.ID)
	return err
}

// ListDiscoverable returns every complete profile except the given user, for
// the partner-discovery screen.
func (r *UserRepo) ListDiscoverable(ctx context.Context, excludeID uuid.UUID) ([]models.UserProfile, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id != $1 AND is_profile_complete
		ORDER BY full_name
	`, excludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.UserProfile
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// GetOrNil resolves a profile, mapping pgx.ErrNoRows to (nil, nil) for callers
// that treat a missing profile as a degradable condition.
func (r *UserRepo) GetOrNil(ctx context.Context, id uuid.UUID) (*models.UserProfile, error) {
	u, err := r.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return u, err
}
