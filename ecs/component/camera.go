package component

// Camera follows the character horizontally. Zoom scales the rendered view.
type Camera struct {
	Zoom float64
}

var CameraComponent = NewComponent[Camera]()
