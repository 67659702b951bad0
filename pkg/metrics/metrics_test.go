package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()

	// 验证所有指标已创建
	if HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal未初始化")
	}
	if HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration未初始化")
	}
	if ReviewsCreatedTotal == nil {
		t.Error("ReviewsCreatedTotal未初始化")
	}
	if RatingRecomputeDuration == nil {
		t.Error("RatingRecomputeDuration未初始化")
	}
	if PDFUploadsTotal == nil {
		t.Error("PDFUploadsTotal未初始化")
	}
}

// TestCounter 测试Counter指标
func TestCounter(t *testing.T) {
	InitMetrics()

	initialValue := getCounterValue(t, ReviewsCreatedTotal)

	// 递增3次
	IncCounter(ReviewsCreatedTotal)
	IncCounter(ReviewsCreatedTotal)
	IncCounter(ReviewsCreatedTotal)

	value := getCounterValue(t, ReviewsCreatedTotal)
	if value != initialValue+3 {
		t.Errorf("Counter值错误: expected=%f, got=%f", initialValue+3, value)
	}
}

// TestCounterVec 测试CounterVec指标
func TestCounterVec(t *testing.T) {
	InitMetrics()

	// 递增不同标签的Counter
	IncCounterVec(ReviewsRejectedTotal, map[string]string{"reason": "validation"})
	IncCounterVec(ReviewsRejectedTotal, map[string]string{"reason": "duplicate"})
	IncCounterVec(ReviewsRejectedTotal, map[string]string{"reason": "validation"})

	// 验证validation的计数为2
	value := getCounterVecValue(t, ReviewsRejectedTotal, map[string]string{"reason": "validation"})
	if value != 2 {
		t.Errorf("CounterVec值错误: expected=2, got=%f", value)
	}
}

// TestGauge 测试Gauge指标
func TestGauge(t *testing.T) {
	InitMetrics()
	SetGauge(HTTPRequestsInProgress, 0)

	// 递增
	IncGauge(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	if value := getGaugeValue(t, HTTPRequestsInProgress); value != 2 {
		t.Errorf("Gauge递增后值错误: expected=2, got=%f", value)
	}

	// 递减
	DecGauge(HTTPRequestsInProgress)
	if value := getGaugeValue(t, HTTPRequestsInProgress); value != 1 {
		t.Errorf("Gauge递减后值错误: expected=1, got=%f", value)
	}

	// 设置值
	SetGauge(HTTPRequestsInProgress, 10)
	if value := getGaugeValue(t, HTTPRequestsInProgress); value != 10 {
		t.Errorf("Gauge设置后值错误: expected=10, got=%f", value)
	}
}

// TestHistogram 测试Histogram指标
func TestHistogram(t *testing.T) {
	InitMetrics()

	initialCount := getHistogramCount(t, RatingRecomputeDuration)

	// 记录多个观测值（评分重算耗时）
	ObserveHistogram(RatingRecomputeDuration, 0.002)
	ObserveHistogram(RatingRecomputeDuration, 0.01)
	ObserveHistogram(RatingRecomputeDuration, 0.08)

	count := getHistogramCount(t, RatingRecomputeDuration)
	if count != initialCount+3 {
		t.Errorf("Histogram观测次数错误: expected=%d, got=%d", initialCount+3, count)
	}
}

// TestHistogramVec 测试HistogramVec指标
func TestHistogramVec(t *testing.T) {
	InitMetrics()

	// 记录不同路径的请求耗时
	ObserveHistogramVec(HTTPRequestDuration, map[string]string{"method": "GET", "path": "/api/v1/products"}, 0.05)
	ObserveHistogramVec(HTTPRequestDuration, map[string]string{"method": "GET", "path": "/api/v1/products"}, 0.1)
	ObserveHistogramVec(HTTPRequestDuration, map[string]string{"method": "POST", "path": "/api/v1/reviews"}, 0.2)

	labels := map[string]string{"method": "GET", "path": "/api/v1/products"}
	count := getHistogramVecCount(t, HTTPRequestDuration, labels)
	if count != 2 {
		t.Errorf("HistogramVec观测次数错误: expected=2, got=%d", count)
	}
}

// =========================================
// 辅助函数：读取指标当前值
// =========================================

func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	if err := counter.Write(m); err != nil {
		t.Fatalf("读取Counter失败: %v", err)
	}
	return m.GetCounter().GetValue()
}

func getCounterVecValue(t *testing.T, vec *prometheus.CounterVec, labels map[string]string) float64 {
	t.Helper()
	m := &dto.Metric{}
	if err := vec.With(labels).Write(m); err != nil {
		t.Fatalf("读取CounterVec失败: %v", err)
	}
	return m.GetCounter().GetValue()
}

func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	m := &dto.Metric{}
	if err := gauge.Write(m); err != nil {
		t.Fatalf("读取Gauge失败: %v", err)
	}
	return m.GetGauge().GetValue()
}

func getHistogramCount(t *testing.T, histogram prometheus.Histogram) uint64 {
	t.Helper()
	m := &dto.Metric{}
	if err := histogram.Write(m); err != nil {
		t.Fatalf("读取Histogram失败: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func getHistogramVecCount(t *testing.T, vec *prometheus.HistogramVec, labels map[string]string) uint64 {
	t.Helper()
	m := &dto.Metric{}
	observer, err := vec.GetMetricWith(labels)
	if err != nil {
		t.Fatalf("获取HistogramVec失败: %v", err)
	}
	if err := observer.(prometheus.Metric).Write(m); err != nil {
		t.Fatalf("读取HistogramVec失败: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}
