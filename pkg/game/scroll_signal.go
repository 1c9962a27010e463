package game

import (
	"math"
	"sync/atomic"
)

// ScrollSignal 页面滚动进度信号
//
// 只有一个写者（滚动系统，在 ebiten 的更新循环中写入），可以有任意多个读者。
// 每次写入生成一个不可变的 {偏移, 进度} 快照并原子替换指针，
// 读者拿到的偏移和进度总是来自同一次写入。
type ScrollSignal struct {
	snap     atomic.Pointer[ScrollSnapshot]
	detached atomic.Bool
}

// ScrollSnapshot 某一次写入的滚动距离与进度
type ScrollSnapshot struct {
	Offset   float64
	Progress float64
}

// NewScrollSignal 创建进度为 0 的信号
func NewScrollSignal() *ScrollSignal {
	return &ScrollSignal{}
}

// Snapshot 读取最近一次写入的完整快照，未写入时为零值
func (s *ScrollSignal) Snapshot() ScrollSnapshot {
	if p := s.snap.Load(); p != nil {
		return *p
	}
	return ScrollSnapshot{}
}

// Progress 读取当前进度 [0,1]
func (s *ScrollSignal) Progress() float64 {
	return s.Snapshot().Progress
}

// Offset 读取当前滚动距离（像素）
func (s *ScrollSignal) Offset() float64 {
	return s.Snapshot().Offset
}

// Store 写入新的滚动距离和进度，进度被钳制到 [0,1]
// 信号被 Detach 之后写入会被忽略。
func (s *ScrollSignal) Store(offset, progress float64) {
	if s.detached.Load() {
		return
	}
	if math.IsNaN(progress) || progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	s.snap.Store(&ScrollSnapshot{Offset: offset, Progress: progress})
}

// Detach 注销写者，之后的 Store 都是空操作
func (s *ScrollSignal) Detach() {
	s.detached.Store(true)
}

// IsDetached 返回信号是否已注销
func (s *ScrollSignal) IsDetached() bool {
	return s.detached.Load()
}
