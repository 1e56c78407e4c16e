package metric

import "bodylang-bot/internal/domain/entity"

// idealLandmarks — синтетическая поза «как надо»: корпус вертикален,
// плечи и уши на одной высоте, нос по центру, кисти в естественной зоне.
func idealLandmarks() entity.LandmarkSet {
	return entity.LandmarkSet{
		entity.KeypointNose:          {X: 0.5, Y: 0.18, Visibility: 0.9},
		entity.KeypointLeftEye:       {X: 0.53, Y: 0.16, Visibility: 0.9},
		entity.KeypointRightEye:      {X: 0.47, Y: 0.16, Visibility: 0.9},
		entity.KeypointLeftEar:       {X: 0.56, Y: 0.18, Visibility: 0.9},
		entity.KeypointRightEar:      {X: 0.44, Y: 0.18, Visibility: 0.9},
		entity.KeypointLeftShoulder:  {X: 0.6, Y: 0.35, Visibility: 0.9},
		entity.KeypointRightShoulder: {X: 0.4, Y: 0.35, Visibility: 0.9},
		entity.KeypointLeftElbow:     {X: 0.63, Y: 0.5, Visibility: 0.9},
		entity.KeypointRightElbow:    {X: 0.37, Y: 0.5, Visibility: 0.9},
		entity.KeypointLeftWrist:     {X: 0.62, Y: 0.62, Visibility: 0.9},
		entity.KeypointRightWrist:    {X: 0.38, Y: 0.62, Visibility: 0.9},
		entity.KeypointLeftHip:       {X: 0.56, Y: 0.65, Visibility: 0.9},
		entity.KeypointRightHip:      {X: 0.44, Y: 0.65, Visibility: 0.9},
	}
}

// withLandmark возвращает копию набора с одной заменённой точкой.
func withLandmark(s entity.LandmarkSet, k entity.Keypoint, lm entity.Landmark) entity.LandmarkSet {
	out := make(entity.LandmarkSet, len(s))
	for key, val := range s {
		out[key] = val
	}
	out[k] = lm
	return out
}

// shiftX возвращает копию набора со сдвигом точки по X.
func shiftX(s entity.LandmarkSet, k entity.Keypoint, dx float64) entity.LandmarkSet {
	lm := s[k]
	lm.X += dx
	return withLandmark(s, k, lm)
}

// shiftY возвращает копию набора со сдвигом точки по Y.
func shiftY(s entity.LandmarkSet, k entity.Keypoint, dy float64) entity.LandmarkSet {
	lm := s[k]
	lm.Y += dy
	return withLandmark(s, k, lm)
}

// dimmed возвращает копию набора с заниженной видимостью точки.
func dimmed(s entity.LandmarkSet, k entity.Keypoint) entity.LandmarkSet {
	lm := s[k]
	lm.Visibility = 0.2
	return withLandmark(s, k, lm)
}
