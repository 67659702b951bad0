// Package tracing 提供基于OpenTelemetry的分布式追踪框架
//
// 核心概念：
// 1. **Trace（追踪）**：一个完整的请求链路（如一次评价提交从HTTP入口到落库）
// 2. **Span（跨度）**：一个操作单元（如"RecomputeRating"），包含操作名、起止时间、状态
// 3. **SpanContext（上下文）**：TraceID/SpanID/ParentSpanID，用于构建调用树
//
// 追踪示例：
//
//	Trace: 提交评价（TraceID=abc123）
//	├─ Span1: HTTP POST /api/v1/reviews（耗时20ms）
//	│  ├─ Span2: AddReview 校验+落库（耗时8ms）
//	│  └─ Span3: RecomputeRating 评分重算（耗时10ms）← 慢查询在这里暴露
//
// 使用OTLP协议导出到Jaeger/Tempo等任意兼容后端，厂商中立。
//
// 使用示例：
//
//	shutdown, err := tracing.InitTracer("bookmart-api", "localhost:4317")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer shutdown(context.Background())
//
//	ctx, span := tracing.StartSpan(ctx, "bookmart-api", "RecomputeRating")
//	defer span.End()
package tracing

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// InitTracer 初始化全局Tracer Provider
//
// 参数：
//   - serviceName: 服务名称（在Jaeger UI中显示）
//   - endpoint: OTLP gRPC端点（如 localhost:4317）
//
// 返回：
//   - shutdown: 关闭函数（程序退出时调用，确保数据刷新）
//   - error: 初始化失败时返回错误
//
// 设计要点：
// 1. 采样策略：AlwaysSample（100%采样），生产环境建议TraceIDRatioBased（如1%）
// 2. BatchSpanProcessor批量发送Span（性能优于SimpleSpanProcessor）
// 3. service.name是必需属性，用于在UI中分组
func InitTracer(serviceName, endpoint string) (func(context.Context) error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 1. 创建OTLP gRPC Exporter（默认端口4317）
	exporter, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(), // 禁用TLS（生产环境应启用）
	)
	if err != nil {
		return nil, fmt.Errorf("创建OTLP exporter失败: %w", err)
	}

	// 2. 创建Resource（资源属性，附加到所有Span）
	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("创建资源属性失败: %w", err)
	}

	// 3. 创建Tracer Provider
	tp := sdktrace.NewTracerProvider(
		// 生产环境建议：sdktrace.WithSampler(sdktrace.TraceIDRatioBased(0.01))
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	// 4. 设置全局TracerProvider
	// 业务代码无需传递Provider，直接使用otel.Tracer()获取
	otel.SetTracerProvider(tp)

	// 5. 设置全局TextMapPropagator（上下文传播器）
	// W3C Trace Context标准Header（traceparent）+ Baggage自定义键值对
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	// 6. 返回关闭函数，确保所有Span被发送到Collector
	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return tp.Shutdown(ctx)
	}

	return shutdown, nil
}

// StartSpan 创建一个新的Span（便捷函数）
//
// 参数：
//   - ctx: 父Context（包含父Span信息）
//   - tracerName: Tracer名称（通常是服务名或模块名）
//   - spanName: Span名称（操作名称，如"RecomputeRating"）
//
// 返回的ctx必须传递给下游调用，否则无法构建调用树。
// Span命名使用操作名，动态值放到属性里：
// span.SetAttributes(attribute.Int("product_id", 123))
func StartSpan(ctx context.Context, tracerName, spanName string) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	return tracer.Start(ctx, spanName)
}
