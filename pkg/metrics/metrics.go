// Package metrics 提供基于Prometheus的指标收集框架
//
// 可观测性三支柱之一（Tracing、Metrics、Logging）：
// - **Tracing（追踪）**: 回答"为什么慢？"（见pkg/tracing）
// - **Metrics（指标）**: 回答"有多少？多快？"（本模块）
// - **Logging（日志）**: 回答"发生了什么？"
//
// 核心指标类型：
// 1. **Counter（计数器）**：只增不减的累计值（HTTP请求总数、评价提交总数）
// 2. **Gauge（仪表盘）**：可增可减的瞬时值（正在处理的请求数）
// 3. **Histogram（直方图）**：观测值的分布，自动计算分位数（请求耗时P50/P90/P99）
//
// 命名规范：
// - Counter以`_total`结尾（reviews_created_total）
// - Histogram以单位结尾（http_request_duration_seconds）
// - 避免高基数标签：❌ user_id（百万级别）✅ method/path/status（有限个值）
//
// 使用示例：
//
//	// 1. 初始化Metrics
//	metrics.InitMetrics()
//
//	// 2. 在HTTP服务中暴露/metrics端点（Prometheus每15秒抓取）
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	// 3. 在业务代码中记录指标
//	start := time.Now()
//	recomputeRating(ctx, productID)
//	metrics.ObserveHistogram(metrics.RatingRecomputeDuration, time.Since(start).Seconds())
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（/api/v1/reviews）、status（200/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 评价业务指标

	// ReviewsCreatedTotal 评价提交总数（Counter）
	ReviewsCreatedTotal prometheus.Counter

	// ReviewsRejectedTotal 评价被拒总数（Counter）
	// 标签：reason（validation/duplicate/not_found）
	ReviewsRejectedTotal *prometheus.CounterVec

	// RatingRecomputeDuration 商品评分重算耗时（Histogram）
	// 评分重算 = 读取该商品全部评价 + 求平均 + 回写商品表
	RatingRecomputeDuration prometheus.Histogram

	// RatingRecomputeFailedTotal 评分重算失败总数（Counter）
	// 评价本身已落库，评分短暂陈旧，下次评价变更时自愈
	RatingRecomputeFailedTotal prometheus.Counter

	// 阅读业务指标

	// ProgressUpdatesTotal 阅读进度更新总数（Counter）
	ProgressUpdatesTotal prometheus.Counter

	// BooksCompletedTotal 标记读完总数（Counter）
	BooksCompletedTotal prometheus.Counter

	// 文件上传指标

	// PDFUploadsTotal PDF上传总数（Counter）
	// 标签：result（success/rejected）
	PDFUploadsTotal *prometheus.CounterVec

	// PDFUploadBytes 上传PDF大小分布（Histogram）
	PDFUploadBytes prometheus.Histogram

	// 消息队列指标

	// MessagesPublishedTotal 消息发布总数（Counter）
	// 标签：exchange（交换机）、routing_key（路由键）
	MessagesPublishedTotal *prometheus.CounterVec

	// MessagesConsumedTotal 消息消费总数（Counter）
	// 标签：queue（队列名称）、result（success/failure）
	MessagesConsumedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
//
// 必须在程序启动时调用一次，用于注册所有指标到全局Registry
//
// 设计要点：
// 1. 使用promauto.New*自动注册到默认Registry
// 2. Counter使用*Vec支持标签（多维度统计）
// 3. Histogram的Buckets根据业务场景定制
func InitMetrics() {
	// 防止重复初始化
	if initialized {
		return
	}
	initialized = true

	// HTTP请求指标
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	// 评价业务指标
	ReviewsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_created_total",
			Help: "评价提交总数",
		},
	)

	ReviewsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviews_rejected_total",
			Help: "评价被拒总数",
		},
		[]string{"reason"},
	)

	RatingRecomputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "rating_recompute_duration_seconds",
			Help: "商品评分重算耗时（秒）",
			// 重算涉及一次全量评价查询+一次回写
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	RatingRecomputeFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rating_recompute_failed_total",
			Help: "商品评分重算失败总数",
		},
	)

	// 阅读业务指标
	ProgressUpdatesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "progress_updates_total",
			Help: "阅读进度更新总数",
		},
	)

	BooksCompletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_completed_total",
			Help: "标记读完总数",
		},
	)

	// 文件上传指标
	PDFUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pdf_uploads_total",
			Help: "PDF上传总数",
		},
		[]string{"result"},
	)

	PDFUploadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "pdf_upload_bytes",
			Help: "上传PDF大小（字节）",
			// 上限10MB
			Buckets: []float64{64 << 10, 256 << 10, 1 << 20, 4 << 20, 10 << 20},
		},
	)

	// 消息队列指标
	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "消息发布总数",
		},
		[]string{"exchange", "routing_key"},
	)

	MessagesConsumedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_consumed_total",
			Help: "消息消费总数",
		},
		[]string{"queue", "result"},
	)
}

// IncCounter 递增Counter（便捷函数）
func IncCounter(counter prometheus.Counter) {
	counter.Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// SetGauge 设置Gauge值
func SetGauge(gauge prometheus.Gauge, value float64) {
	gauge.Set(value)
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	histogram.Observe(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
