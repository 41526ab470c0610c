package services

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/CathalystLTDA/zapcont-api/internal/domain"
	"github.com/CathalystLTDA/zapcont-api/internal/repo"
)

// CompanyInput is the payload for registering a company.
type CompanyInput struct {
	CNPJ         string `json:"cnpj"   validate:"required"`
	ChatID       string `json:"chatId" validate:"required"`
	NomeFantasia string `json:"nomeFantasia"`
	RazaoSocial  string `json:"razaoSocial"`
	Telefone     string `json:"telefone"`
	Email        string `json:"email"  validate:"omitempty,email"`
	Endereco     string `json:"endereco"`
	Cidade       string `json:"cidade"`
	Bairro       string `json:"bairro"`
	Estado       string `json:"estado" validate:"omitempty,len=2"`
	CEP          string `json:"cep"`
}

// CompanyPatch is a partial company update. The CNPJ itself is immutable.
type CompanyPatch struct {
	ChatID       *string `json:"chatId"`
	NomeFantasia *string `json:"nomeFantasia"`
	RazaoSocial  *string `json:"razaoSocial"`
	Telefone     *string `json:"telefone"`
	Email        *string `json:"email"`
	Endereco     *string `json:"endereco"`
	Cidade       *string `json:"cidade"`
	Bairro       *string `json:"bairro"`
	Estado       *string `json:"estado"`
	CEP          *string `json:"cep"`
}

func (p CompanyPatch) columns() map[string]any {
	return patch(map[string]*string{
		"chat_id":       p.ChatID,
		"nome_fantasia": p.NomeFantasia,
		"razao_social":  p.RazaoSocial,
		"telefone":      p.Telefone,
		"email":         p.Email,
		"endereco":      p.Endereco,
		"cidade":        p.Cidade,
		"bairro":        p.Bairro,
		"estado":        p.Estado,
		"cep":           p.CEP,
	})
}

// CompanyService manages companies registered through the bot.
type CompanyService struct {
	DB *gorm.DB
}

// Create registers a company. A CNPJ already on file yields ErrCompanyExists.
func (s *CompanyService) Create(ctx context.Context, in CompanyInput) (*domain.Company, error) {
	tr := otel.Tracer("services/CompanyService")
	ctx, span := tr.Start(ctx, "Create", trace.WithAttributes(attribute.String("chat.id", in.ChatID)))
	defer span.End()

	in.CNPJ, in.ChatID = trimmed(in.CNPJ), trimmed(in.ChatID)
	if err := checkInput(in); err != nil {
		return nil, err
	}

	exists, err := repo.CompanyExists(ctx, s.DB, in.CNPJ)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCompanyExists
	}

	c := &domain.Company{
		CNPJ:         in.CNPJ,
		ChatID:       in.ChatID,
		NomeFantasia: in.NomeFantasia,
		RazaoSocial:  in.RazaoSocial,
		Telefone:     in.Telefone,
		Email:        in.Email,
		Endereco:     in.Endereco,
		Cidade:       in.Cidade,
		Bairro:       in.Bairro,
		Estado:       in.Estado,
		CEP:          in.CEP,
	}
	if err := repo.CreateCompany(ctx, s.DB, c); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrCompanyExists
		}
		return nil, err
	}
	return c, nil
}

// GetByCNPJ returns one company.
func (s *CompanyService) GetByCNPJ(ctx context.Context, cnpj string) (*domain.Company, error) {
	tr := otel.Tracer("services/CompanyService")
	ctx, span := tr.Start(ctx, "GetByCNPJ")
	defer span.End()

	c, err := repo.GetCompanyByCNPJ(ctx, s.DB, cnpj)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrCompanyNotFound
	}
	return c, err
}

// ListByChatID returns the companies owned by chatID (possibly none).
func (s *CompanyService) ListByChatID(ctx context.Context, chatID string) ([]domain.Company, error) {
	tr := otel.Tracer("services/CompanyService")
	ctx, span := tr.Start(ctx, "ListByChatID", trace.WithAttributes(attribute.String("chat.id", chatID)))
	defer span.End()

	return repo.ListCompaniesByChat(ctx, s.DB, chatID)
}

// Update merges p into the company and returns the result.
func (s *CompanyService) Update(ctx context.Context, cnpj string, p CompanyPatch) (*domain.Company, error) {
	tr := otel.Tracer("services/CompanyService")
	ctx, span := tr.Start(ctx, "Update")
	defer span.End()

	if cols := p.columns(); len(cols) > 0 {
		if err := repo.UpdateCompany(ctx, s.DB, cnpj, cols); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, ErrCompanyNotFound
			}
			return nil, err
		}
	}
	return s.GetByCNPJ(ctx, cnpj)
}

// Delete removes the company.
func (s *CompanyService) Delete(ctx context.Context, cnpj string) error {
	tr := otel.Tracer("services/CompanyService")
	ctx, span := tr.Start(ctx, "Delete")
	defer span.End()

	err := repo.DeleteCompany(ctx, s.DB, cnpj)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrCompanyNotFound
	}
	return err
}
