// Copyright (c) AgentFlow Authors.
// Licensed under the MIT License.

/*
Package main 提供 nextleg 命令行程序入口。

# 概述

cmd/nextleg 为每个 API 调用提供一个子命令，响应以缩进 JSON 输出到 stdout，
日志与错误写入 stderr。配置按 默认值 → YAML → NEXTLEG_* 环境变量 加载，
--balanced 切换到负载均衡入口。

# 主要能力

  - 子命令：imagine、img2img、describe、button、seed、slash、settings、
    info、progress、upscale-url，以及 buttons、commands、settings list
    枚举列表和 version、help
  - 请求选项：--ref、--auto-ref（uuid）、--webhook
  - 进度查询：--expire 长轮询，--kind 按调用类型解码 response
  - 可观测性：zap 日志、可选 OTLP 追踪、可选 Prometheus 指标
    （调用结束后以文本格式写入 stderr）
  - 构建注入：Version、BuildTime、GitCommit 通过 ldflags 设置
*/
package main
