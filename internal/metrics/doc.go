// 版权所有 2024 AgentFlow Authors. 版权所有。
// 此源代码的使用由 MIT 许可规范,该许可可以是
// 在LICENSE文件中找到。

/*
包 metrics 提供基于 Prometheus 的 API 调用指标采集。

# 概述

Collector 在调用方提供的 prometheus.Registerer 上注册指标，未提供时
使用默认 registry。同一 registry 上重复创建 Collector 复用已注册向量。

# 核心类型

  - Collector：持有请求计数、耗时与响应体大小三个 Prometheus 向量指标。
  - Instruments：通过 OTel MeterProvider 记录同样的三项指标
    （nextleg.client.requests / request.duration / response.size），
    由 telemetry 包的 OTLP exporter 导出。

# 主要能力

  - requests_total：按 operation/method/status 分组，状态码归类为
    2xx/3xx/4xx/5xx，未收到响应记为 error。
  - request_duration_seconds：按 operation 分组的耗时直方图，
    桶上限覆盖 expireMins 长轮询。
  - response_size_bytes：按 operation 分组的响应体大小。
*/
package metrics
