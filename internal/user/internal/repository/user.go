package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/simplici7y/s7/internal/user/internal/domain"
	"github.com/simplici7y/s7/internal/user/internal/repository/dao"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	Update(ctx context.Context, u domain.User) error
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, error)
	Total(ctx context.Context) (int64, error)
}

type userRepository struct {
	dao dao.UserDAO
}

func NewUserRepository(d dao.UserDAO) UserRepository {
	return &userRepository{dao: d}
}

func (repo *userRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return repo.dao.Insert(ctx, repo.toEntity(u))
}

func (repo *userRepository) Update(ctx context.Context, u domain.User) error {
	return repo.dao.UpdateNonZeroFields(ctx, repo.toEntity(u))
}

func (repo *userRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := repo.dao.FindById(ctx, id)
	return repo.toDomain(u), err
}

func (repo *userRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	us, err := repo.dao.FindByIds(ctx, ids)
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return repo.toDomain(src)
	}), err
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	u, err := repo.dao.FindByUsername(ctx, username)
	return repo.toDomain(u), err
}

func (repo *userRepository) List(ctx context.Context, offset, limit int) ([]domain.User, error) {
	us, err := repo.dao.List(ctx, offset, limit)
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return repo.toDomain(src)
	}), err
}

func (repo *userRepository) Total(ctx context.Context) (int64, error) {
	return repo.dao.Count(ctx)
}

func (repo *userRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		Id:          u.Id,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Admin:       u.Admin,
	}
}

func (repo *userRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		Id:           u.Id,
		Username:     u.Username,
		DisplayName:  u.DisplayName,
		Admin:        u.Admin,
		ItemsCount:   u.ItemsCount,
		ReviewsCount: u.ReviewsCount,
		Ctime:        time.UnixMilli(u.Ctime),
		Utime:        time.UnixMilli(u.Utime),
	}
}
