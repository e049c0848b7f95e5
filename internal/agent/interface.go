package agent

import "context"

// UseCase is the conversation orchestrator contract consumed by delivery
// layers and the eval runner.
type UseCase interface {
	Process(ctx context.Context, in ProcessInput) (string, error)
	ProcessThread(ctx context.Context, in ThreadInput) (string, error)
	Clear(ctx context.Context, userID string)
	SwitchModel(ctx context.Context, provider string) error
	CurrentModelInfo() ModelInfo
	AvailableProviders() []string
	HealthCheck(ctx context.Context) HealthStatus
}

var _ UseCase = (*Agent)(nil)
