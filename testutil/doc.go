// Copyright 2026 AgentFlow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

/*
Package testutil 提供 nextleg 测试的共享工具和辅助函数。

# 核心能力

  - 上下文辅助: TestContext / CancelledContext，
    自动注册 Cleanup 防止泄漏
  - 请求体解码: DecodeBody，解码 MockAPI 记录的请求体

# 子包

  - testutil/mocks: MockAPI，记录请求的 httptest 模拟服务器，
    支持按路径配置响应与错误注入
  - testutil/fixtures: 预置的受理响应、进度查询响应与错误响应

# 使用示例

	api := mocks.NewMockAPI(t).WithReply("/v2/imagine", 200, fixtures.MessageResponseJSON("m-1"))
	c := client.NewDirect("tok", client.WithBaseURL(api.URL()+"/v2"))
	resp, err := c.Imagine(testutil.TestContext(t), "a cat")
*/
package testutil
