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

// UserInfoInput is the payload for registering a profile.
type UserInfoInput struct {
	ChatID         string `json:"chatId"         validate:"required"`
	Nome           string `json:"nome"           validate:"required"`
	CPF            string `json:"cpf"            validate:"required"`
	DataNascimento string `json:"dataNascimento" validate:"required"`
	Email          string `json:"email"          validate:"required"`
}

// UserInfoPatch is a partial profile update; nil fields are left alone.
type UserInfoPatch struct {
	Nome           *string `json:"nome"`
	CPF            *string `json:"cpf"`
	DataNascimento *string `json:"dataNascimento"`
	Email          *string `json:"email"`
}

func (p UserInfoPatch) columns() map[string]any {
	return patch(map[string]*string{
		"nome":            p.Nome,
		"cpf":             p.CPF,
		"data_nascimento": p.DataNascimento,
		"email":           p.Email,
	})
}

// UserInfoService manages chat-bot user profiles.
type UserInfoService struct {
	DB *gorm.DB
}

// Register creates a profile for in.ChatID and makes sure the chat identity
// has a UserState row. The existence check and the insert are separate
// statements; the unique index settles concurrent registrations.
func (s *UserInfoService) Register(ctx context.Context, in UserInfoInput) (*domain.UserInfo, error) {
	tr := otel.Tracer("services/UserInfoService")
	ctx, span := tr.Start(ctx, "Register", trace.WithAttributes(attribute.String("chat.id", in.ChatID)))
	defer span.End()

	in.ChatID = trimmed(in.ChatID)
	if err := checkInput(in); err != nil {
		return nil, err
	}

	exists, err := repo.UserInfoExists(ctx, s.DB, in.ChatID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	u := &domain.UserInfo{
		ChatID:         in.ChatID,
		Nome:           in.Nome,
		CPF:            in.CPF,
		DataNascimento: in.DataNascimento,
		Email:          in.Email,
	}
	if err := repo.CreateUserInfo(ctx, s.DB, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	if err := repo.EnsureUserState(ctx, s.DB, in.ChatID); err != nil {
		return nil, err
	}
	return u, nil
}

// Get returns the profile for chatID.
func (s *UserInfoService) Get(ctx context.Context, chatID string) (*domain.UserInfo, error) {
	tr := otel.Tracer("services/UserInfoService")
	ctx, span := tr.Start(ctx, "Get", trace.WithAttributes(attribute.String("chat.id", chatID)))
	defer span.End()

	u, err := repo.GetUserInfo(ctx, s.DB, chatID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

// Update merges p into chatID's profile and returns the result.
func (s *UserInfoService) Update(ctx context.Context, chatID string, p UserInfoPatch) (*domain.UserInfo, error) {
	tr := otel.Tracer("services/UserInfoService")
	ctx, span := tr.Start(ctx, "Update", trace.WithAttributes(attribute.String("chat.id", chatID)))
	defer span.End()

	if cols := p.columns(); len(cols) > 0 {
		if err := repo.UpdateUserInfo(ctx, s.DB, chatID, cols); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
	}
	return s.Get(ctx, chatID)
}

// Delete removes chatID's profile. The UserState row is kept so the chat
// identity still counts as a user.
func (s *UserInfoService) Delete(ctx context.Context, chatID string) error {
	tr := otel.Tracer("services/UserInfoService")
	ctx, span := tr.Start(ctx, "Delete", trace.WithAttributes(attribute.String("chat.id", chatID)))
	defer span.End()

	err := repo.DeleteUserInfo(ctx, s.DB, chatID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
