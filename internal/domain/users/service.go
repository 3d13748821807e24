package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-adoption-api/internal/ports/auth"
	"pet-adoption-api/internal/schema"
	"pet-adoption-api/internal/validation"
)

type Service struct {
	repo   Repository
	hasher auth.PasswordHasher
	tokens auth.TokenIssuer
	policy Policy
	now    func() time.Time
}

func NewService(repo Repository, hasher auth.PasswordHasher, tokens auth.TokenIssuer, policy Policy) *Service {
	if policy.Phone == nil {
		policy.Phone = validation.PhoneLocal
	}
	return &Service{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		policy: policy,
		now:    time.Now,
	}
}

type RegisterInput struct {
	Email    string
	Name     string
	Surname  string
	Phone    string
	Password string
}

type UpdateInput struct {
	// Punteros para merge parcial: nil = conservar el valor actual.
	Email    *string
	Name     *string
	Surname  *string
	Phone    *string
	Password *string
	Role     *string
	Active   *bool
}

// Register valida la entrada, controla existencia previa, hashea la clave
// y persiste. La unicidad definitiva la garantiza el índice del storage.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	now := s.now()
	u := User{
		Email:      validation.NormalizeEmail(in.Email),
		Name:       strings.TrimSpace(in.Name),
		Surname:    strings.TrimSpace(in.Surname),
		Phone:      strings.TrimSpace(in.Phone),
		Role:       RoleUser,
		Active:     true,
		LastAccess: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := schema.ValidateContext(ctx, PasswordRules(in.Password)); err != nil {
		return User{}, err
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return User{}, err
	}
	u.Password = hashed

	if err := u.ValidateContext(ctx, s.policy); err != nil {
		return User{}, err
	}

	_, err = s.repo.GetByEmail(ctx, u.Email)
	switch {
	case err == nil:
		return User{}, ErrDuplicateEmail
	case !errors.Is(err, ErrNotFound):
		return User{}, err
	}

	return s.repo.Create(ctx, u)
}

// Login devuelve el usuario y un token firmado. Email desconocido y clave
// incorrecta responden el mismo error.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	u, err := s.repo.GetByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, "", ErrInvalidCredentials
		}
		return User{}, "", err
	}

	if !s.hasher.Verify(password, u.Password) {
		return User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.Email)
	if err != nil {
		return User{}, "", err
	}
	return u, token, nil
}

// Profile busca la cuenta de la identidad autenticada.
func (s *Service) Profile(ctx context.Context, email string) (User, error) {
	return s.repo.GetByEmail(ctx, validation.NormalizeEmail(email))
}

func (s *Service) GetAll(ctx context.Context) ([]User, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}

// Update aplica merge parcial y revalida el registro completo antes de
// persistir. Una clave nueva pasa por las mismas reglas de complejidad y
// se vuelve a hashear.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (User, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	merged := current
	if in.Email != nil {
		merged.Email = validation.NormalizeEmail(*in.Email)
	}
	if in.Name != nil {
		merged.Name = strings.TrimSpace(*in.Name)
	}
	if in.Surname != nil {
		merged.Surname = strings.TrimSpace(*in.Surname)
	}
	if in.Phone != nil {
		merged.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Role != nil {
		merged.Role = Role(strings.TrimSpace(*in.Role))
	}
	if in.Active != nil {
		merged.Active = *in.Active
	}
	if in.Password != nil {
		if err := schema.ValidateContext(ctx, PasswordRules(*in.Password)); err != nil {
			return User{}, err
		}
		hashed, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return User{}, err
		}
		merged.Password = hashed
	}
	merged.UpdatedAt = s.now()

	if err := merged.ValidateContext(ctx, s.policy); err != nil {
		return User{}, err
	}
	return s.repo.Update(ctx, merged)
}

func (s *Service) Delete(ctx context.Context, id string) (User, error) {
	return s.repo.Delete(ctx, id)
}
