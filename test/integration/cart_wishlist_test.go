package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 心愿单/购物车集成测试
//
// 场景覆盖：
// 1. 心愿单幂等加入/移除
// 2. 购物车数量累加与库存上限
// 3. 两个模块的每次变更都返回当前列表

func TestWishlist(t *testing.T) {
	RequireIntegration(t)
	adminToken := AdminToken(t)

	productID := AddTestProduct(t, adminToken, "《心愿单测试商品》", 10)
	_, token := RegisterTestUser(t, "wisher")

	t.Run("加入后返回当前列表", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/wishlist", map[string]interface{}{"product_id": productID}, token)
		require.Equal(t, 0, resp.Code, "加入心愿单失败: %s", resp.Message)

		var data ListData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, 1, data.Count)
	})

	t.Run("重复加入是幂等的", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/wishlist", map[string]interface{}{"product_id": productID}, token)
		require.Equal(t, 0, resp.Code, "重复加入不应报错")

		var data ListData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, 1, data.Count, "重复加入不应产生新条目")
	})

	t.Run("不存在的商品不能加入", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/wishlist", map[string]interface{}{"product_id": 99999999}, token)
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("移除不存在的条目是no-op", func(t *testing.T) {
		resp := DeleteJSON(t, fmt.Sprintf("%s/wishlist/%d", BaseURL, 99999998), token)
		require.Equal(t, 0, resp.Code, "移除不存在条目不应报错")
	})

	t.Run("移除后列表为空", func(t *testing.T) {
		resp := DeleteJSON(t, fmt.Sprintf("%s/wishlist/%d", BaseURL, productID), token)
		require.Equal(t, 0, resp.Code)

		var data ListData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, 0, data.Count)
	})
}

func TestCart(t *testing.T) {
	RequireIntegration(t)
	adminToken := AdminToken(t)

	productID := AddTestProduct(t, adminToken, "《购物车测试商品》", 5)
	_, token := RegisterTestUser(t, "shopper")

	t.Run("首次加购", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/cart", map[string]interface{}{
			"product_id": productID,
			"quantity":   2,
		}, token)
		require.Equal(t, 0, resp.Code, "加购失败: %s", resp.Message)

		var data ListData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		require.Equal(t, 1, data.Count)
		assert.Equal(t, 2, data.Items[0].Quantity)
	})

	t.Run("重复加购数量累加", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/cart", map[string]interface{}{
			"product_id": productID,
			"quantity":   3,
		}, token)
		require.Equal(t, 0, resp.Code)

		var data ListData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, 5, data.Items[0].Quantity, "2+3=5")
	})

	t.Run("累加超库存整体拒绝", func(t *testing.T) {
		// 库存5,当前已有5,再加1应拒绝
		resp := PostJSON(t, BaseURL+"/cart", map[string]interface{}{
			"product_id": productID,
			"quantity":   1,
		}, token)
		assert.NotEqual(t, 0, resp.Code)
		assert.Equal(t, "Requested quantity exceeds available stock", resp.Message)

		// 购物车保持不变(不截断)
		listResp := GetJSON(t, BaseURL+"/cart", token)
		var data ListData
		require.NoError(t, json.Unmarshal(listResp.Data, &data))
		assert.Equal(t, 5, data.Items[0].Quantity)
	})

	t.Run("改量直接设置为目标数量", func(t *testing.T) {
		resp := PutJSON(t, fmt.Sprintf("%s/cart/%d", BaseURL, productID), map[string]interface{}{
			"quantity": 1,
		}, token)
		require.Equal(t, 0, resp.Code)

		var data ListData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, 1, data.Items[0].Quantity)
	})

	t.Run("移除后购物车为空", func(t *testing.T) {
		resp := DeleteJSON(t, fmt.Sprintf("%s/cart/%d", BaseURL, productID), token)
		require.Equal(t, 0, resp.Code)

		var data ListData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, 0, data.Count)
	})
}
