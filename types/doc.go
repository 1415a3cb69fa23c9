// Copyright (c) AgentFlow Authors.
// Licensed under the MIT License.

/*
Package types 提供 nextleg 客户端的共享请求/响应词汇。

# 概述

types 是最底层的公共包，不依赖任何内部包。client 包中的 Direct 与
Balanced 两个门面共享这里定义的消息结构，字段名即线上契约，JSON 输出
顺序与服务端约定一致，不得重命名或调整顺序。

# 核心类型

  - BaseRequest              : ref / webhookOverride 透传字段
  - ImagineRequest 等        : 各操作的请求体
  - MessageResponse          : 任务受理确认（负载均衡版附带 loadBalanceId / accountId）
  - MessageAndProgress       : 单次轮询结果，progress 为 0-100 或 "incomplete"
  - WebhookResponse / Payload: 结果负载的标签联合，按 Kind 或 type 字段解析
  - Button / SlashCommand / Setting: 封闭枚举，按原样序列化（含 emoji）
  - Error / ErrorCode        : 结构化错误，携带 HTTP 状态码与响应体

# 主要能力

  - Progress 自定义编解码：整数与 "incomplete" 哨兵互转
  - WebhookResponse.Decode：按调用方记录的 Kind 取出具体变体
  - DecodeWebhook：解析调用方自行接收的 webhook 请求体
  - 错误工具链：AsError / IsErrorCode / StatusCode
*/
package types
