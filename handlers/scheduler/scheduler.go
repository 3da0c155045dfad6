package scheduler

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/Meesho/BharatMLStack/task-scheduler/internal/errors"
	"github.com/Meesho/BharatMLStack/task-scheduler/pkg/config"
	"github.com/Meesho/BharatMLStack/task-scheduler/pkg/metric"
	"github.com/Meesho/BharatMLStack/task-scheduler/pkg/utils"
)

type Scheduler struct {
	Registry *ScheduleRegistry
}

// Schedule answers a request from the request-handling layer. Unlike Order,
// an empty task list is rejected here.
func (s *Scheduler) Schedule(ctx context.Context, req *ScheduleRequest) (*ScheduleResponse, error) {

	startTime := time.Now()
	response, err := s.schedule(ctx, req)
	tags := metric.BuildTag(metric.NewTag(metric.TagOutcome, ClassifyError(err).String()))
	metric.Incr(metric.ScheduleRequestCount, tags)
	metric.Timing(metric.ScheduleRequestLatency, time.Since(startTime), tags)
	return response, err
}

func (s *Scheduler) schedule(ctx context.Context, req *ScheduleRequest) (*ScheduleResponse, error) {

	if req == nil || utils.IsNilOrEmpty(req.Tasks) {
		return nil, &errors.InvalidInputError{ErrorMsg: "At least one task is required"}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	metric.Count(metric.ScheduleTaskCount, int64(len(req.Tasks)), nil)

	order, err := s.Registry.getOrder(req.Tasks)
	if err != nil {
		return nil, err
	}
	return &ScheduleResponse{RecommendedOrder: order}, nil
}

// ClassifyError tells the caller whether err is the client's fault.
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var invalidInput *errors.InvalidInputError
	if stderrors.As(err, &invalidInput) {
		return KindInvalidInput
	}
	var cycle *errors.CycleError
	if stderrors.As(err, &cycle) {
		return KindCycle
	}
	return KindInternal
}

func ParsePolicy(cfg config.PolicyConfig) (Policy, error) {

	policy := DefaultPolicy()
	switch UnknownDependencyPolicy(cfg.UnknownDependencies) {
	case "", ImplicitNode:
	case RejectUnknown:
		policy.UnknownDependencies = RejectUnknown
	default:
		return policy, &errors.BadRequestError{ErrorMsg: fmt.Sprintf("Invalid unknown dependency policy: %s", cfg.UnknownDependencies)}
	}
	switch DuplicateTitlePolicy(cfg.DuplicateTitles) {
	case "", MergeDuplicates:
	case RejectDuplicates:
		policy.DuplicateTitles = RejectDuplicates
	default:
		return policy, &errors.BadRequestError{ErrorMsg: fmt.Sprintf("Invalid duplicate title policy: %s", cfg.DuplicateTitles)}
	}
	return policy, nil
}
