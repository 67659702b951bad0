package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookmart/pkg/errors"
)

// fakeUserRepo 内存用户仓储
type fakeUserRepo struct {
	nextID uint
	users  map[string]*User // key: email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[string]*User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *User) error {
	if _, ok := f.users[u.Email]; ok {
		return apperrors.ErrEmailDuplicate
	}
	u.ID = f.nextID
	f.nextID++
	cp := *u
	f.users[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (*User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *User) error {
	cp := *u
	f.users[u.Email] = &cp
	return nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("正常注册", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())

		u, err := svc.Register(ctx, "alice@example.com", "Pass1234", "Alice")
		require.NoError(t, err)
		assert.NotZero(t, u.ID)
		assert.Equal(t, "alice@example.com", u.Email)
		assert.False(t, u.IsAdmin, "注册的用户不应是管理员")
		assert.NotEqual(t, "Pass1234", u.Password, "密码必须加密存储")
	})

	t.Run("邮箱格式非法", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())

		for _, email := range []string{"not-an-email", "a@b", "@example.com", "user@.com"} {
			_, err := svc.Register(ctx, email, "Pass1234", "Alice")
			require.Error(t, err, "邮箱 %s 应该被拒绝", email)
			assert.Equal(t, "Invalid email format", apperrors.GetAppError(err).Message)
		}
	})

	t.Run("密码强度不足", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())

		for _, password := range []string{
			"short1",                // 太短
			"abcdefghijklmnopqrst1", // 21位,太长
			"onlyletters",           // 无数字
			"12345678",              // 无字母
		} {
			_, err := svc.Register(ctx, "alice@example.com", password, "Alice")
			assert.ErrorIs(t, err, apperrors.ErrWeakPassword, "密码 %s 应该被拒绝", password)
		}
	})

	t.Run("昵称长度2-50", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())

		_, err := svc.Register(ctx, "alice@example.com", "Pass1234", "A")
		require.Error(t, err)
		assert.Equal(t, "Nickname must be 2-50 characters", apperrors.GetAppError(err).Message)
	})

	t.Run("邮箱重复返回409", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())

		_, err := svc.Register(ctx, "alice@example.com", "Pass1234", "Alice")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "alice@example.com", "Pass5678", "Alice2")
		require.Error(t, err)
		assert.Equal(t, 409, apperrors.GetAppError(err).HTTPStatus())
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) Service {
		svc := NewService(newFakeUserRepo())
		_, err := svc.Register(ctx, "alice@example.com", "Pass1234", "Alice")
		require.NoError(t, err)
		return svc
	}

	t.Run("正确的邮箱和密码登录成功", func(t *testing.T) {
		svc := setup(t)

		u, err := svc.Login(ctx, "alice@example.com", "Pass1234")
		require.NoError(t, err)
		assert.Equal(t, "Alice", u.Nickname)
	})

	t.Run("密码错误", func(t *testing.T) {
		svc := setup(t)

		_, err := svc.Login(ctx, "alice@example.com", "WrongPass1")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("邮箱不存在", func(t *testing.T) {
		svc := setup(t)

		_, err := svc.Login(ctx, "bob@example.com", "Pass1234")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
