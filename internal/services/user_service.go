package services

import (
	"context"
	"strings"
	"time"

	"carpool/internal/domain"
	"carpool/internal/domain/models"
	"carpool/internal/utils"

	"github.com/motoki317/sc"
)

type UserStore interface {
	Insert(ctx context.Context, u models.User) error
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
}

// UserService registers and looks up users. Users are immutable once
// registered, so point lookups go through a read-through cache.
type UserService struct {
	Repo  UserStore
	cache *sc.Cache[string, models.User]
}

func NewUserService(repo UserStore, ttl time.Duration) (*UserService, error) {
	s := &UserService{Repo: repo}
	if ttl <= 0 {
		return s, nil
	}
	cache, err := sc.New[string, models.User](func(ctx context.Context, id string) (models.User, error) {
		return repo.GetByID(ctx, id)
	}, ttl, ttl, sc.WithLRUBackend(4096))
	if err != nil {
		return nil, err
	}
	s.cache = cache
	return s, nil
}

func (s *UserService) Register(ctx context.Context, in models.RegisterUserInput) (models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	if err := validateInput(in, "Name, email and phone are required"); err != nil {
		return models.User{}, err
	}

	u := models.User{
		ID:     domain.NewUserID(),
		Name:   in.Name,
		Phone:  in.Phone,
		Email:  in.Email,
		IsUser: true,
	}
	if err := s.Repo.Insert(ctx, u); err != nil {
		utils.LogCtx(ctx, "user", "register", "insert failed: "+err.Error())
		return models.User{}, domain.WrapStore("User registration failed", err)
	}
	utils.LogCtx(ctx, "user", "register", "created user_id="+u.ID)
	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.List(ctx)
	if err != nil {
		utils.LogCtx(ctx, "user", "list", "query failed: "+err.Error())
		return nil, domain.WrapStore("Database error", err)
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.User{}, domain.ValidationError{Field: "id", Msg: "required"}
	}

	var (
		u   models.User
		err error
	)
	if s.cache != nil {
		u, err = s.cache.Get(ctx, id)
	} else {
		u, err = s.Repo.GetByID(ctx, id)
	}
	if err != nil {
		if !domain.IsNotFound(err) {
			utils.LogCtx(ctx, "user", "get", "query failed: "+err.Error())
		}
		return models.User{}, domain.WrapStore("Database error", err)
	}
	return u, nil
}
