package game

// Tap 一次点击，坐标相对于可点击区域的左上角
type Tap struct {
	X float64
	Y float64
}

// Bounds 可点击区域在屏幕上的尺寸
type Bounds struct {
	Width  float64
	Height float64
}

// MapTap 把点击位置映射为转向意图。
// 区域按 3×3 切分：左中 LEFT，右中 RIGHT，上中 UP，下中 DOWN；
// 中心、四角、分界线上以及区域外的点击都不改变方向。
// 与 current 相反的方向被拒绝（第二个返回值为 false）。
func MapTap(tap Tap, bounds Bounds, current Direction) (Direction, bool) {
	return Steer(tapZone(tap, bounds), current)
}

// tapZone 只做区域划分，不考虑当前方向；未命中任何方向区域时返回 DirNone
func tapZone(tap Tap, bounds Bounds) Direction {
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return DirNone
	}
	if tap.X < 0 || tap.Y < 0 || tap.X > bounds.Width || tap.Y > bounds.Height {
		return DirNone
	}

	cellW := bounds.Width / 3
	cellH := bounds.Height / 3
	midRow := tap.Y > cellH && tap.Y < 2*cellH
	midCol := tap.X > cellW && tap.X < 2*cellW

	switch {
	case tap.X < cellW && midRow:
		return DirLeft
	case tap.X > 2*cellW && midRow:
		return DirRight
	case tap.Y < cellH && midCol:
		return DirUp
	case tap.Y > 2*cellH && midCol:
		return DirDown
	default:
		return DirNone
	}
}

// Steer 直接的转向请求（例如方向键），同样拒绝掉头
func Steer(requested, current Direction) (Direction, bool) {
	if requested == DirNone || requested.IsReverseOf(current) {
		return DirNone, false
	}
	return requested, true
}
