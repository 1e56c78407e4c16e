//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"

	"bodylang-bot/internal/domain/entity"
	"bodylang-bot/internal/domain/port"
)

// cocoChannels — соответствие наших точек каналам тепловых карт
// модели OpenPose COCO (18 частей тела).
var cocoChannels = map[entity.Keypoint]int{
	entity.KeypointNose:          0,
	entity.KeypointRightShoulder: 2,
	entity.KeypointRightElbow:    3,
	entity.KeypointRightWrist:    4,
	entity.KeypointLeftShoulder:  5,
	entity.KeypointLeftElbow:     6,
	entity.KeypointLeftWrist:     7,
	entity.KeypointRightHip:      8,
	entity.KeypointLeftHip:       11,
	entity.KeypointRightEye:      14,
	entity.KeypointLeftEye:       15,
	entity.KeypointRightEar:      16,
	entity.KeypointLeftEar:       17,
}

// GoCVPoseEstimator находит точки тела DNN-моделью OpenPose через OpenCV.
type GoCVPoseEstimator struct {
	InputSize         int
	MinPartConfidence float64 // пик тепловой карты ниже — точка отбрасывается
	MinPoseConfidence float64 // порог опорных точек для вывода «человек есть»

	mu  sync.Mutex // gocv.Net не потокобезопасен
	net gocv.Net
}

// NewGoCVPoseEstimator загружает модель позы из prototxt и caffemodel.
func NewGoCVPoseEstimator(protoPath, modelPath string) (*GoCVPoseEstimator, error) {
	net := gocv.ReadNet(modelPath, protoPath)
	if net.Empty() {
		return nil, fmt.Errorf("read pose model %s: empty network", modelPath)
	}
	return &GoCVPoseEstimator{
		InputSize:         368,
		MinPartConfidence: 0.1,
		MinPoseConfidence: 0.2,
		net:               net,
	}, nil
}

// Detect находит точки тела на кадре. Отсутствие человека — (nil, nil).
func (e *GoCVPoseEstimator) Detect(ctx context.Context, frame *entity.Frame) (entity.LandmarkSet, error) {
	_ = ctx
	mat, err := gocv.IMDecode(frame.Data, gocv.IMReadColor)
	if err != nil || mat.Empty() {
		if !mat.Empty() {
			mat.Close()
		}
		return nil, errors.New("failed to decode frame")
	}
	defer mat.Close()

	blob := gocv.BlobFromImage(mat, 1.0/255.0,
		image.Pt(e.InputSize, e.InputSize), gocv.NewScalar(0, 0, 0, 0), false, false)
	defer blob.Close()

	e.mu.Lock()
	e.net.SetInput(blob, "")
	out := e.net.Forward("")
	e.mu.Unlock()
	defer out.Close()

	sizes := out.Size()
	if len(sizes) < 4 {
		return nil, fmt.Errorf("unexpected pose model output dims %v", sizes)
	}
	heatH, heatW := sizes[2], sizes[3]

	set := make(entity.LandmarkSet, len(cocoChannels))
	for keypoint, channel := range cocoChannels {
		heat, err := out.FromPtr(heatH, heatW, gocv.MatTypeCV32F, 0, channel)
		if err != nil {
			return nil, fmt.Errorf("slice heatmap channel %d: %w", channel, err)
		}
		_, maxVal, _, maxLoc := gocv.MinMaxLoc(heat)
		heat.Close()

		conf := float64(maxVal)
		if conf < e.MinPartConfidence {
			continue
		}
		if conf > 1 {
			conf = 1
		}
		set[keypoint] = entity.Landmark{
			X:          float64(maxLoc.X) / float64(heatW),
			Y:          float64(maxLoc.Y) / float64(heatH),
			Visibility: conf,
		}
	}

	// Человек считается найденным, если видна хоть одна опорная точка.
	core := 0
	for _, k := range []entity.Keypoint{entity.KeypointNose, entity.KeypointLeftShoulder, entity.KeypointRightShoulder} {
		if set.Visible(k, e.MinPoseConfidence) {
			core++
		}
	}
	if core == 0 {
		return nil, nil
	}
	return set, nil
}

// Close освобождает загруженную модель.
func (e *GoCVPoseEstimator) Close() error {
	return e.net.Close()
}

var _ port.PoseEstimator = (*GoCVPoseEstimator)(nil)
