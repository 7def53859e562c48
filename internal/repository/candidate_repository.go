package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobboard/internal/model"
)

// CandidateRepository defines candidate persistence operations.
type CandidateRepository interface {
	CreateIfAbsent(ctx context.Context, candidate *model.Candidate) (created bool, err error)
	Update(ctx context.Context, candidate *model.Candidate) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Candidate, error)
	FindByEmail(ctx context.Context, email string) (*model.Candidate, error)
	Search(ctx context.Context, query string, limit int) ([]model.Candidate, error)
	Count(ctx context.Context) (int64, error)
}

type candidateRepository struct {
	db *gorm.DB
}

// NewCandidateRepository creates a new candidate repository.
func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// CreateIfAbsent inserts the candidate unless one with the same email already
// exists. Returns created=false when the email was already taken, so two
// concurrent applies with the same email cannot produce duplicate rows.
func (r *candidateRepository) CreateIfAbsent(ctx context.Context, candidate *model.Candidate) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(candidate)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Update updates an existing candidate.
func (r *candidateRepository) Update(ctx context.Context, candidate *model.Candidate) error {
	return r.db.WithContext(ctx).Save(candidate).Error
}

// FindByID finds a candidate by ID.
func (r *candidateRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Candidate, error) {
	var candidate model.Candidate
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&candidate).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}

// FindByEmail finds a candidate by email, case-insensitively.
func (r *candidateRepository) FindByEmail(ctx context.Context, email string) (*model.Candidate, error) {
	var candidate model.Candidate
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&candidate).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}

// Search lists candidates newest first, optionally filtered by a substring
// match over name, email and profile.
func (r *candidateRepository) Search(ctx context.Context, query string, limit int) ([]model.Candidate, error) {
	q := r.db.WithContext(ctx).Model(&model.Candidate{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("name LIKE ? OR email LIKE ? OR profile LIKE ?", like, like, like)
	}
	var candidates []model.Candidate
	if err := q.Order("created_at DESC").Limit(limit).Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

// Count returns the total number of candidates.
func (r *candidateRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Candidate{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
