package service

import (
	"context"
	"testing"

	"github.com/simplici7y/s7/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserService struct {
	user.UserService
	users map[int64]user.User
}

func (s *stubUserService) Profile(ctx context.Context, id int64) (user.User, error) {
	return s.users[id], nil
}

func TestCanMutate(t *testing.T) {
	svc := NewPermissionService(&stubUserService{
		users: map[int64]user.User{
			1: {Id: 1},
			2: {Id: 2, Admin: true},
			3: {Id: 3},
		},
	})

	testCases := []struct {
		name     string
		actorUid int64
		ownerUid int64
		want     bool
	}{
		{name: "所有者", actorUid: 1, ownerUid: 1, want: true},
		{name: "管理员", actorUid: 2, ownerUid: 1, want: true},
		{name: "其他用户", actorUid: 3, ownerUid: 1, want: false},
		{name: "匿名", actorUid: 0, ownerUid: 1, want: false},
		{name: "管理员专属操作", actorUid: 2, ownerUid: 0, want: true},
		{name: "普通用户做管理员操作", actorUid: 1, ownerUid: 0, want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := svc.CanMutate(context.Background(), tc.actorUid, tc.ownerUid)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}
