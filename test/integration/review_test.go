package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 评价模块集成测试
//
// 场景覆盖：
// 1. 提交评价(校验、重复评价409)
// 2. 修改/删除评价(所有权)
// 3. 商品评分随评价变更重算
// 4. 商品评价列表分页

func TestReviewLifecycle(t *testing.T) {
	RequireIntegration(t)
	adminToken := AdminToken(t)

	productID := AddTestProduct(t, adminToken, "《评价测试商品》", 10)
	_, token := RegisterTestUser(t, "reviewer_a")

	t.Run("提交评价成功", func(t *testing.T) {
		reviewReq := map[string]interface{}{
			"product_id": productID,
			"rating":     4,
			"comment":    "内容很扎实，值得一读再读",
		}

		resp := PostJSON(t, BaseURL+"/reviews", reviewReq, token)
		require.Equal(t, 0, resp.Code, "提交评价失败: %s", resp.Message)

		var data ReviewData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, 4, data.Rating)

		t.Logf("✓ 评价提交成功，ID: %d", data.ID)
	})

	t.Run("商品评分已更新", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/products/%d", BaseURL, productID), "")
		require.Equal(t, 0, resp.Code)

		var data ProductData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, 4.0, data.Rating, "单条4分评价后商品评分应为4.0")
	})

	t.Run("重复评价返回409", func(t *testing.T) {
		reviewReq := map[string]interface{}{
			"product_id": productID,
			"rating":     5,
			"comment":    "换个分数再评一次试试看",
		}

		resp := PostJSON(t, BaseURL+"/reviews", reviewReq, token)
		assert.NotEqual(t, 0, resp.Code, "重复评价应该失败")
		assert.Equal(t, "You have already reviewed this product", resp.Message)
	})

	t.Run("校验失败返回全部违规文案", func(t *testing.T) {
		_, freshToken := RegisterTestUser(t, "reviewer_invalid")

		reviewReq := map[string]interface{}{
			"product_id": productID,
			"rating":     0,
			"comment":    "太短",
		}

		resp := PostJSON(t, BaseURL+"/reviews", reviewReq, freshToken)
		assert.NotEqual(t, 0, resp.Code)
		assert.Contains(t, resp.Errors, "Rating must be an integer between 1 and 5")
		assert.Contains(t, resp.Errors, "Comment must be at least 10 characters long")
	})

	t.Run("多条评价取平均并保留1位小数", func(t *testing.T) {
		_, tokenB := RegisterTestUser(t, "reviewer_b")
		reviewReq := map[string]interface{}{
			"product_id": productID,
			"rating":     5,
			"comment":    "五星好评，印刷和内容都很棒",
		}
		resp := PostJSON(t, BaseURL+"/reviews", reviewReq, tokenB)
		require.Equal(t, 0, resp.Code)

		productResp := GetJSON(t, fmt.Sprintf("%s/products/%d", BaseURL, productID), "")
		var data ProductData
		require.NoError(t, json.Unmarshal(productResp.Data, &data))
		assert.Equal(t, 4.5, data.Rating, "(4+5)/2=4.5")
	})

	t.Run("非本人不能修改评价", func(t *testing.T) {
		// reviewer_a的评价ID通过列表查回
		listResp := GetJSON(t, fmt.Sprintf("%s/products/%d/reviews", BaseURL, productID), "")
		require.Equal(t, 0, listResp.Code)

		var list struct {
			Reviews []ReviewData `json:"reviews"`
		}
		require.NoError(t, json.Unmarshal(listResp.Data, &list))
		require.NotEmpty(t, list.Reviews)

		_, intruderToken := RegisterTestUser(t, "intruder")
		updateReq := map[string]interface{}{
			"rating":  1,
			"comment": "恶意篡改他人的评价内容",
		}

		resp := PutJSON(t, fmt.Sprintf("%s/reviews/%d", BaseURL, list.Reviews[0].ID), updateReq, intruderToken)
		assert.NotEqual(t, 0, resp.Code, "非本人修改应该失败(404)")
	})
}

func TestReviewList(t *testing.T) {
	RequireIntegration(t)
	adminToken := AdminToken(t)

	productID := AddTestProduct(t, adminToken, "《评价列表测试商品》", 10)

	// 12个用户各提交一条评价
	for i := 0; i < 12; i++ {
		_, token := RegisterTestUser(t, fmt.Sprintf("lister_%d", i))
		reviewReq := map[string]interface{}{
			"product_id": productID,
			"rating":     (i % 5) + 1,
			"comment":    fmt.Sprintf("第%d条评价，凑够十个字符的内容", i),
		}
		resp := PostJSON(t, BaseURL+"/reviews", reviewReq, token)
		require.Equal(t, 0, resp.Code, "准备测试数据失败: %s", resp.Message)
	}

	t.Run("默认分页每页10条", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/products/%d/reviews", BaseURL, productID), "")
		require.Equal(t, 0, resp.Code)

		var list struct {
			Reviews      []ReviewData `json:"reviews"`
			CurrentPage  int          `json:"currentPage"`
			TotalPages   int          `json:"totalPages"`
			TotalReviews int64        `json:"totalReviews"`
			HasNextPage  bool         `json:"hasNextPage"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &list))

		assert.Len(t, list.Reviews, 10)
		assert.Equal(t, 1, list.CurrentPage)
		assert.Equal(t, 2, list.TotalPages)
		assert.Equal(t, int64(12), list.TotalReviews)
		assert.True(t, list.HasNextPage)
	})

	t.Run("第2页返回剩余2条", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/products/%d/reviews?page=2", BaseURL, productID), "")
		require.Equal(t, 0, resp.Code)

		var list struct {
			Reviews     []ReviewData `json:"reviews"`
			HasNextPage bool         `json:"hasNextPage"`
			HasPrevPage bool         `json:"hasPrevPage"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &list))

		assert.Len(t, list.Reviews, 2)
		assert.False(t, list.HasNextPage)
		assert.True(t, list.HasPrevPage)
	})
}
