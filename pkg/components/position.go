package components

// PositionComponent 实体在屏幕上的位置（控件 bounds 的左上角）
type PositionComponent struct {
	X float64
	Y float64
}
