package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLandmarkSet_Visible(t *testing.T) {
	s := LandmarkSet{
		KeypointNose:         {X: 0.5, Y: 0.2, Visibility: 0.9},
		KeypointLeftShoulder: {X: 0.4, Y: 0.4, Visibility: 0.3},
	}

	require.True(t, s.Visible(KeypointNose, 0.5))
	require.False(t, s.Visible(KeypointLeftShoulder, 0.5))
	require.False(t, s.Visible(KeypointRightShoulder, 0.5))
}

func TestLandmarkSet_AllVisible(t *testing.T) {
	s := LandmarkSet{
		KeypointLeftShoulder:  {X: 0.4, Y: 0.4, Visibility: 0.8},
		KeypointRightShoulder: {X: 0.6, Y: 0.4, Visibility: 0.7},
		KeypointLeftHip:       {X: 0.45, Y: 0.7, Visibility: 0.4},
	}

	require.True(t, s.AllVisible(0.5, KeypointLeftShoulder, KeypointRightShoulder))
	require.False(t, s.AllVisible(0.5, KeypointLeftShoulder, KeypointLeftHip))
}

func TestLandmarkSet_Midpoint(t *testing.T) {
	s := LandmarkSet{
		KeypointLeftShoulder:  {X: 0.4, Y: 0.4, Visibility: 1},
		KeypointRightShoulder: {X: 0.6, Y: 0.5, Visibility: 1},
	}

	x, y, ok := s.Midpoint(KeypointLeftShoulder, KeypointRightShoulder)
	require.True(t, ok)
	require.InDelta(t, 0.5, x, 1e-9)
	require.InDelta(t, 0.45, y, 1e-9)

	_, _, ok = s.Midpoint(KeypointLeftHip, KeypointRightHip)
	require.False(t, ok)
}

func TestFrameObservation_Detected(t *testing.T) {
	require.False(t, FrameObservation{Index: 5}.Detected())
	require.True(t, FrameObservation{Index: 5, Landmarks: LandmarkSet{}}.Detected())
}
