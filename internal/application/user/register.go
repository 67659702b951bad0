package user

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/user"
)

// RegisterUseCase 用户注册用例
// 设计说明：
// 1. 应用层负责用例编排（调用领域服务、组装DTO）
// 2. 不包含业务规则（业务规则在domain层）
type RegisterUseCase struct {
	userService user.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service) *RegisterUseCase {
	return &RegisterUseCase{userService: userService}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string
	Password string
	Nickname string
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	User UserInfo `json:"user"`
}

// Execute 执行注册
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	// 调用领域服务完成注册（校验、加密、持久化）
	u, err := uc.userService.Register(ctx, req.Email, req.Password, req.Nickname)
	if err != nil {
		return nil, err
	}

	return &RegisterResponse{
		User: UserInfo{
			ID:       u.ID,
			Email:    u.Email,
			Nickname: u.Nickname,
			IsAdmin:  u.IsAdmin,
		},
	}, nil
}
