package scheduler

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Meesho/BharatMLStack/task-scheduler/internal/errors"
	"github.com/Meesho/BharatMLStack/task-scheduler/pkg/cache"
	"github.com/Meesho/BharatMLStack/task-scheduler/pkg/config"
)

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	c, err := cache.NewCache(100, 60)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return NewScheduler(c, DefaultPolicy())
}

func TestScheduler_Schedule(t *testing.T) {
	tests := []struct {
		name         string
		request      *ScheduleRequest
		expected     []string
		expectedKind ErrorKind
	}{
		{
			name: "diamond",
			request: &ScheduleRequest{Tasks: []Task{
				task("Design"),
				task("Backend", "Design"),
				task("Frontend", "Design"),
				task("Test", "Backend", "Frontend"),
			}},
			expected:     []string{"Design", "Backend", "Frontend", "Test"},
			expectedKind: KindNone,
		},
		{
			name:         "undeclared dependency",
			request:      &ScheduleRequest{Tasks: []Task{task("A", "Ghost")}},
			expected:     []string{"Ghost", "A"},
			expectedKind: KindNone,
		},
		{
			name:         "nil request",
			request:      nil,
			expectedKind: KindInvalidInput,
		},
		{
			name:         "no tasks",
			request:      &ScheduleRequest{Tasks: []Task{}},
			expectedKind: KindInvalidInput,
		},
		{
			name:         "empty title",
			request:      &ScheduleRequest{Tasks: []Task{task("")}},
			expectedKind: KindInvalidInput,
		},
		{
			name:         "cycle",
			request:      &ScheduleRequest{Tasks: []Task{task("A", "B"), task("B", "A")}},
			expectedKind: KindCycle,
		},
		{
			name:         "self dependency",
			request:      &ScheduleRequest{Tasks: []Task{task("A", "A")}},
			expectedKind: KindCycle,
		},
	}

	s := newTestScheduler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := s.Schedule(context.Background(), tt.request)
			assert.Equal(t, tt.expectedKind, ClassifyError(err))
			if tt.expectedKind != KindNone {
				assert.Nil(t, response)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, response.RecommendedOrder)
		})
	}
}

func TestScheduler_ScheduleCarriesMetadata(t *testing.T) {
	due := "2024-06-01"
	request := &ScheduleRequest{Tasks: []Task{
		{Title: "Write", EstimatedDuration: 3, DueDate: &due},
		{Title: "Review", EstimatedDuration: 1, Dependencies: []string{"Write"}},
	}}

	response, err := newTestScheduler(t).Schedule(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, []string{"Write", "Review"}, response.RecommendedOrder)
}

func TestScheduler_ScheduleHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	response, err := newTestScheduler(t).Schedule(ctx, &ScheduleRequest{Tasks: []Task{task("A")}})
	assert.Nil(t, response)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, KindInternal, ClassifyError(err))
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorKind
	}{
		{name: "nil", err: nil, expected: KindNone},
		{name: "invalid input", err: &errors.InvalidInputError{ErrorMsg: "bad"}, expected: KindInvalidInput},
		{name: "cycle", err: &errors.CycleError{ErrorMsg: "loop"}, expected: KindCycle},
		{name: "wrapped cycle", err: fmt.Errorf("scheduling: %w", &errors.CycleError{ErrorMsg: "loop"}), expected: KindCycle},
		{name: "other", err: stderrors.New("boom"), expected: KindInternal},
		{name: "bad request", err: &errors.BadRequestError{ErrorMsg: "config"}, expected: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyError(tt.err))
		})
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.PolicyConfig
		expected Policy
		wantErr  bool
	}{
		{
			name:     "empty falls back to defaults",
			cfg:      config.PolicyConfig{},
			expected: DefaultPolicy(),
		},
		{
			name:     "explicit defaults",
			cfg:      config.PolicyConfig{UnknownDependencies: "implicit", DuplicateTitles: "merge"},
			expected: DefaultPolicy(),
		},
		{
			name:     "strict",
			cfg:      config.PolicyConfig{UnknownDependencies: "reject", DuplicateTitles: "reject"},
			expected: Policy{UnknownDependencies: RejectUnknown, DuplicateTitles: RejectDuplicates},
		},
		{
			name:    "unknown dependency policy typo",
			cfg:     config.PolicyConfig{UnknownDependencies: "ignore"},
			wantErr: true,
		},
		{
			name:    "duplicate policy typo",
			cfg:     config.PolicyConfig{DuplicateTitles: "keep-first"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, err := ParsePolicy(tt.cfg)
			if tt.wantErr {
				var badRequest *errors.BadRequestError
				require.ErrorAs(t, err, &badRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, policy)
		})
	}
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "success", KindNone.String())
	assert.Equal(t, "invalid_input", KindInvalidInput.String())
	assert.Equal(t, "cycle", KindCycle.String())
	assert.Equal(t, "error", KindInternal.String())
}

func TestInitScheduler(t *testing.T) {
	resetInstance(t)
	cfg := &config.SchedulerConfig{
		ApplicationName: "task-scheduler",
		ScheduleCache:   cache.RistrettoConfig{Ttl: 60, Size: 100},
		Scheduler:       config.PolicyConfig{UnknownDependencies: "reject", DuplicateTitles: "merge"},
	}

	s := InitScheduler(cfg)
	require.NotNil(t, s)
	assert.Same(t, s, Instance())
	assert.Same(t, s, InitScheduler(cfg))
	assert.Equal(t, RejectUnknown, s.Registry.Policy.UnknownDependencies)
}
