package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 运行方式：先启动服务(go run ./cmd/api)，再执行
//
//	BOOKMART_INTEGRATION=1 go test ./test/integration/...
//
// 管理端用例需要一个管理员Token(is_admin需要直接在数据库置位)：
//
//	BOOKMART_TEST_ADMIN_TOKEN=<token>

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// RequireIntegration 未开启集成测试开关时跳过
func RequireIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("BOOKMART_INTEGRATION") == "" {
		t.Skip("集成测试需要运行中的服务，设置BOOKMART_INTEGRATION=1开启")
	}
}

// AdminToken 管理员Token(管理端用例用)，未配置时跳过
func AdminToken(t *testing.T) string {
	t.Helper()
	token := os.Getenv("BOOKMART_TEST_ADMIN_TOKEN")
	if token == "" {
		t.Skip("管理端用例需要BOOKMART_TEST_ADMIN_TOKEN")
	}
	return token
}

// Response 统一响应结构
type Response struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Errors  []string        `json:"errors"`
	Data    json.RawMessage `json:"data"`
}

// LoginData 登录响应数据
type LoginData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ReviewData 评价响应数据
type ReviewData struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"product_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// ProgressData 阅读进度响应数据
type ProgressData struct {
	BookID          uint `json:"book_id"`
	CurrentPage     int  `json:"currentPage"`
	LastReadChapter int  `json:"lastReadChapter"`
	ReadingTime     int  `json:"readingTime"`
	Completed       bool `json:"completed"`
}

// ListData 心愿单/购物车响应数据
type ListData struct {
	Items []struct {
		ProductID uint `json:"product_id"`
		Quantity  int  `json:"quantity"`
	} `json:"items"`
	Count int `json:"count"`
}

// ProductData 商品响应数据
type ProductData struct {
	ID     uint    `json:"id"`
	Title  string  `json:"title"`
	Price  int64   `json:"price"`
	Stock  int     `json:"stock"`
	Rating float64 `json:"rating"`
}

// DoJSON 发送带JSON体的请求并解析统一响应
func DoJSON(t *testing.T, method, url string, data interface{}, token string) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(raw, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(raw))

	return &result
}

// PostJSON 发送POST请求
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return DoJSON(t, "POST", url, data, token)
}

// PutJSON 发送PUT请求
func PutJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return DoJSON(t, "PUT", url, data, token)
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string, token string) *Response {
	return DoJSON(t, "GET", url, nil, token)
}

// DeleteJSON 发送DELETE请求
func DeleteJSON(t *testing.T, url string, token string) *Response {
	return DoJSON(t, "DELETE", url, nil, token)
}

// GenerateTestEmail 生成唯一的测试邮箱
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// RegisterTestUser 注册测试用户并返回Token
func RegisterTestUser(t *testing.T, nickname string) (email string, token string) {
	t.Helper()

	email = GenerateTestEmail(nickname)
	registerReq := map[string]string{
		"email":    email,
		"password": "Test1234",
		"nickname": nickname,
	}

	registerResp := PostJSON(t, BaseURL+"/users/register", registerReq, "")
	require.Equal(t, 0, registerResp.Code, "注册失败: %s", registerResp.Message)

	loginReq := map[string]string{
		"email":    email,
		"password": "Test1234",
	}

	loginResp := PostJSON(t, BaseURL+"/users/login", loginReq, "")
	require.Equal(t, 0, loginResp.Code, "登录失败: %s", loginResp.Message)

	var loginData LoginData
	err := json.Unmarshal(loginResp.Data, &loginData)
	require.NoError(t, err, "解析登录响应失败")

	return email, loginData.AccessToken
}

// AddTestProduct 管理员新增测试商品并返回商品ID
func AddTestProduct(t *testing.T, adminToken string, title string, stock int) uint {
	t.Helper()

	productReq := map[string]interface{}{
		"title":       title,
		"author":      "测试作者",
		"description": "集成测试用商品",
		"category":    "编程",
		"price":       8900,
		"stock":       stock,
	}

	resp := PostJSON(t, BaseURL+"/admin/products", productReq, adminToken)
	require.Equal(t, 0, resp.Code, "商品新增失败: %s", resp.Message)

	var data ProductData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析商品响应失败")

	return data.ID
}
