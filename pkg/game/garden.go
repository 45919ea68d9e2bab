package game

import (
	"github.com/decker502/tulips/pkg/entities"
)

// Garden 本次会话中种下的全部郁金香
//
// 只追加、不删除，遍历顺序即种植顺序。
// 郁金香之间互不影响，顺序只用于保证测试可重复。
type Garden struct {
	tulips []*entities.Tulip
}

// NewGarden 创建空花园
func NewGarden() *Garden {
	return &Garden{}
}

// Add 追加一株郁金香
func (g *Garden) Add(t *entities.Tulip) {
	g.tulips = append(g.tulips, t)
}

// Len 返回郁金香数量
func (g *Garden) Len() int {
	return len(g.tulips)
}

// At 返回第 i 株（按种植顺序）
func (g *Garden) At(i int) *entities.Tulip {
	return g.tulips[i]
}

// Each 按种植顺序遍历
func (g *Garden) Each(fn func(t *entities.Tulip)) {
	for _, t := range g.tulips {
		fn(t)
	}
}
