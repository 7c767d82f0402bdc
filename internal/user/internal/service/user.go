package service

import (
	"context"

	"github.com/simplici7y/s7/internal/user/internal/domain"
	"github.com/simplici7y/s7/internal/user/internal/repository"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUserNotFound  = repository.ErrUserNotFound
	ErrUserDuplicate = repository.ErrUserDuplicate
)

//go:generate mockgen -source=./user.go -package=svcmocks -destination=mocks/user.mock.go UserService
type UserService interface {
	// Signup 注册，username 唯一
	Signup(ctx context.Context, u domain.User) (int64, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	Profiles(ctx context.Context, ids []int64) ([]domain.User, error)
	ProfileByUsername(ctx context.Context, username string) (domain.User, error)
	// UpdateNonSensitiveInfo 更新展示资料，计数列不受用户输入影响
	UpdateNonSensitiveInfo(ctx context.Context, u domain.User) error
	List(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (svc *userService) Signup(ctx context.Context, u domain.User) (int64, error) {
	// 注册时去掉一切不该由用户带进来的东西
	u.Admin = false
	u.ItemsCount = 0
	u.ReviewsCount = 0
	return svc.repo.Create(ctx, u)
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) Profiles(ctx context.Context, ids []int64) ([]domain.User, error) {
	return svc.repo.FindByIds(ctx, ids)
}

func (svc *userService) ProfileByUsername(ctx context.Context, username string) (domain.User, error) {
	return svc.repo.FindByUsername(ctx, username)
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, u domain.User) error {
	return svc.repo.Update(ctx, u)
}

func (svc *userService) List(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	var (
		eg    errgroup.Group
		us    []domain.User
		total int64
	)
	eg.Go(func() error {
		var err error
		us, err = svc.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = svc.repo.Total(ctx)
		return err
	})
	err := eg.Wait()
	return us, total, err
}
