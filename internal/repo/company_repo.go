package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/CathalystLTDA/zapcont-api/internal/domain"
)

// CreateCompany inserts a company; a repeated CNPJ yields ErrDuplicate.
func CreateCompany(ctx context.Context, db *gorm.DB, c *domain.Company) error {
	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// CompanyExists reports whether a company with cnpj is stored.
func CompanyExists(ctx context.Context, db *gorm.DB, cnpj string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.Company{}).Where("cnpj = ?", cnpj).Count(&n).Error
	return n > 0, err
}

// GetCompanyByCNPJ fetches one company.
func GetCompanyByCNPJ(ctx context.Context, db *gorm.DB, cnpj string) (*domain.Company, error) {
	var c domain.Company
	if err := db.WithContext(ctx).Where("cnpj = ?", cnpj).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCompaniesByChat returns every company owned by chatID, oldest first.
func ListCompaniesByChat(ctx context.Context, db *gorm.DB, chatID string) ([]domain.Company, error) {
	out := []domain.Company{}
	err := db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

// UpdateCompany applies column values to the company identified by cnpj.
func UpdateCompany(ctx context.Context, db *gorm.DB, cnpj string, fields map[string]any) error {
	res := db.WithContext(ctx).
		Model(&domain.Company{}).
		Where("cnpj = ?", cnpj).
		Updates(fields)
	return affected(res)
}

// DeleteCompany removes the company identified by cnpj.
func DeleteCompany(ctx context.Context, db *gorm.DB, cnpj string) error {
	return affected(db.WithContext(ctx).Where("cnpj = ?", cnpj).Delete(&domain.Company{}))
}
