package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/internal/repository"
	"github.com/limbo/hydration/pkg/entity"
)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	if usersRepo == nil {
		log.Fatal("provided nil usersRepo")
	}
	return &UserService{
		repo: usersRepo,
	}
}

func (us *UserService) CreateUser(ctx context.Context, req *CreateUserRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	user := entity.User{
		Name:   req.Name,
		Weight: req.Weight,
	}
	if err := us.repo.Create(ctx, &user); err != nil {
		return nil, errors.New("repository creating error: " + err.Error())
	}
	return &user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) ListUsers(ctx context.Context, pagination PaginationOpts) ([]*entity.User, int, error) {
	total, err := us.repo.Count(ctx)
	if err != nil {
		return nil, 0, errors.New("repository counting error: " + err.Error())
	}
	users, err := us.repo.List(ctx, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, 0, errors.New("repository listing error: " + err.Error())
	}
	return users, total, nil
}

func (us *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	err := us.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}
