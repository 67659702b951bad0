package mq

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"
)

// 说明：本文件的测试需要本地RabbitMQ实例
// 通过环境变量BOOKMART_TEST_MQ_URL指定连接地址，未设置时跳过

func testMQURL(t *testing.T) string {
	t.Helper()
	url := os.Getenv("BOOKMART_TEST_MQ_URL")
	if url == "" {
		t.Skip("BOOKMART_TEST_MQ_URL未设置，跳过RabbitMQ测试")
	}
	return url
}

// TestPublisher_Publish 测试发布消息
func TestPublisher_Publish(t *testing.T) {
	url := testMQURL(t)

	publisher, err := NewPublisher(url, "bookmart.test.events", "topic")
	if err != nil {
		t.Fatalf("创建Publisher失败: %v", err)
	}
	defer publisher.Close()

	event := NewReviewEvent(123, 456, 789, 4.5, "created")

	if err := publisher.Publish("review.created", event); err != nil {
		t.Fatalf("发布消息失败: %v", err)
	}
}

// TestPubSub_Integration 集成测试：发布订阅完整流程
func TestPubSub_Integration(t *testing.T) {
	url := testMQURL(t)

	publisher, err := NewPublisher(url, "bookmart.test.events", "topic")
	if err != nil {
		t.Fatalf("创建Publisher失败: %v", err)
	}
	defer publisher.Close()

	consumer, err := NewConsumer(
		url,
		"bookmart.test.events",
		"topic",
		"test.review.queue",
		[]string{"review.*"}, // 订阅所有review.开头的事件
	)
	if err != nil {
		t.Fatalf("创建Consumer失败: %v", err)
	}
	defer consumer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	receivedActions := make(chan string, 3)

	go func() {
		consumer.Consume(ctx, func(body []byte) error {
			var event ReviewEvent
			if err := json.Unmarshal(body, &event); err != nil {
				return err
			}
			receivedActions <- event.Action
			return nil
		})
	}()

	// 等待消费者启动
	time.Sleep(1 * time.Second)

	// 发布3条消息
	actions := []string{"created", "updated", "deleted"}
	for i, action := range actions {
		err := publisher.Publish("review."+action, NewReviewEvent(uint(i+1), 100, 200, 4.0, action))
		if err != nil {
			t.Errorf("发布消息失败: %v", err)
		}
	}

	// 验证3条消息全部收到
	got := make([]string, 0, 3)
	for len(got) < 3 {
		select {
		case action := <-receivedActions:
			got = append(got, action)
		case <-ctx.Done():
			t.Fatalf("超时，期望收到3条消息，实际收到%d条: %v", len(got), got)
		}
	}

	t.Logf("✅ 集成测试通过，收到事件: %v", got)
}
