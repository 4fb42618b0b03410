package scheduler

import "context"

// UseCase defines the business logic interface for the scheduler domain.
type UseCase interface {
	// Plan runs one deadline-aware allocation over the horizon and
	// materializes the result in the external task tracker.
	Plan(ctx context.Context, input PlanInput) (PlanOutput, error)
}
