package service

import (
	"math/rand"
	"time"
)

// Chooser 随机源。模板选择和概率门控都经过它，
// 测试中注入固定脚本即可覆盖两条分支。
type Chooser interface {
	Intn(n int) int
	Float64() float64
}

// NewChooser 创建默认随机源
func NewChooser() Chooser {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// pick 从候选列表中随机选择一项
func pick(chooser Chooser, options []string) string {
	return options[chooser.Intn(len(options))]
}
