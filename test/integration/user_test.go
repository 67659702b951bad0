package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 用户模块集成测试
//
// 场景覆盖：
// 1. 注册(参数校验、邮箱重复)
// 2. 登录(错误密码)
// 3. 登出后Token进入黑名单

func TestUserRegister(t *testing.T) {
	RequireIntegration(t)

	t.Run("正常注册", func(t *testing.T) {
		email := GenerateTestEmail("register_ok")
		resp := PostJSON(t, BaseURL+"/users/register", map[string]string{
			"email":    email,
			"password": "Test1234",
			"nickname": "测试用户",
		}, "")

		assert.Equal(t, 0, resp.Code, "注册应该成功: %s", resp.Message)
	})

	t.Run("邮箱重复返回409", func(t *testing.T) {
		email := GenerateTestEmail("register_dup")
		req := map[string]string{
			"email":    email,
			"password": "Test1234",
			"nickname": "测试用户",
		}

		resp := PostJSON(t, BaseURL+"/users/register", req, "")
		require.Equal(t, 0, resp.Code)

		resp = PostJSON(t, BaseURL+"/users/register", req, "")
		assert.NotEqual(t, 0, resp.Code, "重复注册应该失败")
		assert.Equal(t, "Email already registered", resp.Message)
	})

	t.Run("弱密码被拒绝", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/users/register", map[string]string{
			"email":    GenerateTestEmail("weak_pass"),
			"password": "12345678",
			"nickname": "测试用户",
		}, "")

		assert.NotEqual(t, 0, resp.Code, "纯数字密码应该被拒绝")
	})
}

func TestUserLoginLogout(t *testing.T) {
	RequireIntegration(t)

	email, token := RegisterTestUser(t, "login_user")

	t.Run("错误密码登录失败", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/users/login", map[string]string{
			"email":    email,
			"password": "WrongPass1",
		}, "")

		assert.NotEqual(t, 0, resp.Code, "错误密码应该登录失败")
	})

	t.Run("登出后Token失效", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/users/logout", nil, token)
		require.Equal(t, 0, resp.Code, "登出失败: %s", resp.Message)

		// 用已登出的Token访问需要认证的接口
		resp = GetJSON(t, BaseURL+"/cart", token)
		assert.NotEqual(t, 0, resp.Code, "已登出的Token应该被拒绝")
	})
}
