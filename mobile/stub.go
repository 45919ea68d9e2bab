//go:build !mobile

// Package mobile 在桌面构建中只提供占位符，
// 使 go build ./... 不会因为构建约束排除全部文件而失败。
package mobile

// Dummy 与 mobile.go 中的导出保持一致
func Dummy() {}
