package container

import (
	app "bodylang-bot/internal/application"
	"bodylang-bot/internal/domain/port"
	"bodylang-bot/internal/domain/scoring"
)

type Container struct {
	UserService       *app.UserService
	AnalysisService   *app.AnalysisService
	EyeContactService *app.EyeContactService
}

func New(userRepo port.UserRepository, video port.VideoSource, pose port.PoseEstimator, policy scoring.Policy) *Container {
	userService := app.NewUserService(userRepo)
	analysisService := app.NewAnalysisService(video, pose, policy)
	eyeContactService := app.NewEyeContactService(video, pose, policy)

	return &Container{
		UserService:       userService,
		AnalysisService:   analysisService,
		EyeContactService: eyeContactService,
	}
}
