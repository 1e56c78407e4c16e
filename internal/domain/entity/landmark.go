package entity

// Keypoint — именованная ключевая точка тела.
type Keypoint string

const (
	KeypointNose          Keypoint = "nose"
	KeypointLeftEye       Keypoint = "left_eye"
	KeypointRightEye      Keypoint = "right_eye"
	KeypointLeftEar       Keypoint = "left_ear"
	KeypointRightEar      Keypoint = "right_ear"
	KeypointLeftShoulder  Keypoint = "left_shoulder"
	KeypointRightShoulder Keypoint = "right_shoulder"
	KeypointLeftElbow     Keypoint = "left_elbow"
	KeypointRightElbow    Keypoint = "right_elbow"
	KeypointLeftWrist     Keypoint = "left_wrist"
	KeypointRightWrist    Keypoint = "right_wrist"
	KeypointLeftHip       Keypoint = "left_hip"
	KeypointRightHip      Keypoint = "right_hip"
)

// Landmark — точка тела в нормализованных координатах кадра.
type Landmark struct {
	X          float64 // горизонталь, [0,1]
	Y          float64 // вертикаль, [0,1], ось направлена вниз
	Visibility float64 // уверенность детектора, [0,1]
}

// LandmarkSet — набор точек тела для одного кадра.
// После создания набор не изменяется.
type LandmarkSet map[Keypoint]Landmark

// Get возвращает точку по имени.
func (s LandmarkSet) Get(k Keypoint) (Landmark, bool) {
	lm, ok := s[k]
	return lm, ok
}

// Visible проверяет, что точка присутствует и её уверенность не ниже порога.
func (s LandmarkSet) Visible(k Keypoint, minVisibility float64) bool {
	lm, ok := s[k]
	return ok && lm.Visibility >= minVisibility
}

// AllVisible проверяет видимость сразу нескольких точек.
func (s LandmarkSet) AllVisible(minVisibility float64, keys ...Keypoint) bool {
	for _, k := range keys {
		if !s.Visible(k, minVisibility) {
			return false
		}
	}
	return true
}

// Midpoint возвращает середину отрезка между двумя точками.
func (s LandmarkSet) Midpoint(a, b Keypoint) (x, y float64, ok bool) {
	la, okA := s[a]
	lb, okB := s[b]
	if !okA || !okB {
		return 0, 0, false
	}
	return (la.X + lb.X) / 2, (la.Y + lb.Y) / 2, true
}
