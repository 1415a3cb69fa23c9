// Package config 提供 nextleg 客户端与 CLI 的配置管理功能。
//
// 配置按 默认值 → YAML 文件 → 环境变量 的顺序叠加，
// 环境变量前缀默认为 NEXTLEG，例如 NEXTLEG_API_TOKEN。
package config
