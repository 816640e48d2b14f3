package service

import (
	"fmt"

	"dining_sync/internal/domain"
)

// StageError reports the pipeline stage a run failed in.
type StageError struct {
	Stage domain.Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
