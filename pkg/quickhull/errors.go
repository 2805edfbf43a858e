package quickhull

import "errors"

var (
	// меньше четырех точек
	ErrInvalidInput = errors.New("quickhull: invalid input")
	// все точки совпадают, лежат на одной прямой или в одной плоскости
	ErrDegenerateInput = errors.New("quickhull: degenerate input")
	// нарушена связность полуребер во время построения
	ErrBrokenMesh = errors.New("quickhull: broken mesh")
)
