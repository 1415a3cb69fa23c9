// =============================================================================
// 📦 测试数据工厂 - API 响应测试数据
// =============================================================================
// 提供预定义的 TheNextLeg 响应体，用于测试
// =============================================================================
package fixtures

import (
	"encoding/json"
	"fmt"

	"github.com/BaSui01/nextleg/types"
)

// =============================================================================
// 🎯 提交类响应
// =============================================================================

// MessageResponseJSON 返回成功受理的响应体
func MessageResponseJSON(messageID string) string {
	return fmt.Sprintf(`{"success":true,"messageId":%q,"createdAt":"2023-05-01T10:00:00.000Z"}`, messageID)
}

// BalancedMessageResponseJSON 返回负载均衡受理的响应体
func BalancedMessageResponseJSON(messageID, loadBalanceID, accountID string) string {
	return fmt.Sprintf(
		`{"success":true,"messageId":%q,"createdAt":"2023-05-01T10:00:00.000Z","loadBalanceId":%q,"accountId":%q}`,
		messageID, loadBalanceID, accountID,
	)
}

// =============================================================================
// 🎯 进度查询响应
// =============================================================================

// ImagineButtons 是四宫格结果上的按钮
var ImagineButtons = []string{"U1", "U2", "U3", "U4", "🔄", "V1", "V2", "V3", "V4"}

// ImagineResult 返回完成的 imagine 结果
func ImagineResult(ref, imageURL string) types.ImagineResult {
	return types.ImagineResult{
		BaseResponse: types.BaseResponse{
			Ref:                  ref,
			CreatedAt:            "2023-05-01T10:00:00.000Z",
			ResponseAt:           "2023-05-01T10:00:45.000Z",
			OriginatingMessageID: "orig-1",
			ButtonMessageID:      "btn-1",
			ImageURL:             imageURL,
			Buttons:              append([]string(nil), ImagineButtons...),
		},
		Content: "A cat playing piano",
	}
}

// ProgressJSON 返回进度查询响应体；payload 为 nil 时不含 response
func ProgressJSON(progress types.Progress, payload types.Payload) string {
	m := types.MessageAndProgress{Progress: progress}
	if payload != nil {
		resp, err := types.NewWebhookResponse(payload)
		if err != nil {
			panic(fmt.Sprintf("fixtures: encode payload: %v", err))
		}
		m.Response = resp
	}
	data, err := json.Marshal(m)
	if err != nil {
		panic(fmt.Sprintf("fixtures: marshal progress: %v", err))
	}
	return string(data)
}

// ErrorJSON 返回错误响应体
func ErrorJSON(msg string) string {
	return fmt.Sprintf(`{"success":false,"error":%q}`, msg)
}
