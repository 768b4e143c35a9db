package ui

// ControlManual returns the plain-text control reference shown below the
// canvas
func ControlManual() string {
	return `Controls
PAN
  W , S          forward / backward
  A , D          left / right
  SPACE , SHIFT  up / down
ROTATE
  CTRL + LMB     free spin
  ARROW KEYS     rotate direction
  Q , E          roll left / right
ZOOM
  MOUSEWHEEL     zoom in / out`
}
