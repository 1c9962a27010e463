package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a page scene (the landing page itself, or a test scene).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Closer 是一个可选接口，场景被替换或应用退出时调用 Close 释放资源
//
// 实现方必须保证 Close 可以重复调用，并且 Close 之后的 Update 是空操作。
type Closer interface {
	Close()
}
