// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 保存最后一次触摸位置（用于触摸释放时获取位置）
var lastTouchX, lastTouchY int

// GetPointerState 获取指针的完整状态
// 返回：是否按下、X坐标、Y坐标
func GetPointerState() (pressed bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}

// UpdateLastTouchPosition 更新最后一次触摸位置
// 应该在每帧更新时调用
func UpdateLastTouchPosition() {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
	}
}

// IsPointerJustPressed 检查是否刚刚按下指针（触摸或鼠标）
// 返回是否按下、按下位置以及是否来自触摸
func IsPointerJustPressed() (pressed bool, x, y int, touch bool) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		lastTouchX, lastTouchY = x, y
		return true, x, y, true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return true, x, y, false
	}

	return false, 0, 0, false
}

// IsPointerJustReleased 检查是否刚刚释放指针（触摸或鼠标）
// 返回是否释放以及释放位置
func IsPointerJustReleased() (bool, int, int) {
	// 触摸释放时使用保存的最后触摸位置
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return true, lastTouchX, lastTouchY
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
