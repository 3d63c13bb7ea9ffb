package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayumstir/IS4103-Capstone/pkg/logger"
)

type noopJob struct {
	name     string
	schedule string
}

func (j *noopJob) Name() string                  { return j.name }
func (j *noopJob) Schedule() string              { return j.schedule }
func (j *noopJob) Run(ctx context.Context) error { return nil }

func TestScheduler_AddJob(t *testing.T) {
	s := New(logger.Nop())

	err := s.AddJob(&noopJob{name: "rescore", schedule: "0 0 2 1 * *"})
	require.NoError(t, err)

	assert.Contains(t, s.GetAllJobs(), "rescore")

	history, err := s.GetJobHistory("rescore")
	require.NoError(t, err)
	assert.Empty(t, history.Results)
}

func TestScheduler_AddJobDuplicate(t *testing.T) {
	s := New(logger.Nop())

	require.NoError(t, s.AddJob(&noopJob{name: "rescore", schedule: "@monthly"}))

	err := s.AddJob(&noopJob{name: "rescore", schedule: "@daily"})
	assert.Error(t, err)
}

func TestScheduler_AddJobInvalidSchedule(t *testing.T) {
	s := New(logger.Nop())

	err := s.AddJob(&noopJob{name: "broken", schedule: "not a cron expression"})
	assert.Error(t, err)
	assert.NotContains(t, s.GetAllJobs(), "broken")
}

func TestScheduler_RunJobUnknown(t *testing.T) {
	s := New(logger.Nop())

	err := s.RunJob("missing")
	assert.Error(t, err)
}

func TestJobHistory_KeepsLastHundred(t *testing.T) {
	h := &JobHistory{}

	for i := 0; i < 150; i++ {
		h.AddResult(JobResult{JobName: "rescore", Success: i%2 == 0})
	}

	assert.Len(t, h.Results, 100)
	assert.Len(t, h.GetLatestResults(10), 10)
	assert.Equal(t, 0.5, h.GetSuccessRate())
	assert.Len(t, h.GetFailedResults(), 50)
}

func TestJobHistory_Duration(t *testing.T) {
	start := time.Now()
	h := &JobHistory{}
	h.AddResult(JobResult{
		JobName:   "rescore",
		StartTime: start,
		EndTime:   start.Add(2 * time.Second),
		Duration:  2 * time.Second,
		Success:   true,
	})

	latest := h.GetLatestResults(1)
	require.Len(t, latest, 1)
	assert.Equal(t, 2*time.Second, latest[0].Duration)
}
