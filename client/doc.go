// Copyright (c) AgentFlow Authors.
// Licensed under the MIT License.

/*
Package client 提供 TheNextLeg 图像生成 API 的类型化客户端。

# 概述

Direct 对接单账号 v2 API，Balanced 对接负载均衡入口。每个方法对应一次
HTTP 往返：请求体按字段顺序编码，所有请求携带 Bearer 认证与 JSON
Content-Type 头，非 2xx 响应以 types.Error 返回，包含状态码与原始响应体。
客户端不做参数校验、不重试、不轮询。

# 核心类型

  - Direct：imagine、img2img、describe、button、seed、slash-commands、
    settings、info、消息进度查询与 upscale 图像地址查询。
  - Balanced：imagine、describe、button 与消息进度查询，
    后续调用需携带 loadBalanceId。
  - Option / RequestOption：客户端级与单次请求级的函数式选项。

# 主要能力

  - 日志：WithLogger 注入 zap.Logger，每次调用记录 Debug，失败记录 Warn。
  - 指标：WithMetrics 在调用方 registry 上注册 Prometheus 指标。
  - 追踪：每次调用一个 nextleg.<operation> span。
  - 配置：NewFromConfig 从 config.Config 构建客户端。
*/
package client
