package tui

import (
	"time"

	"go.trai.ch/peek/internal/core/domain"
)

// MsgInitPlan lists the offsets that will be recovered.
type MsgInitPlan struct {
	Offsets []int
}

// MsgByteStart marks an offset as being recovered.
type MsgByteStart struct {
	SpanID    string
	Offset    int
	StartTime time.Time
}

// MsgByteRecovered carries the outcome of one offset.
type MsgByteRecovered struct {
	SpanID  string
	Result  domain.RecoveryResult
	EndTime time.Time
	Err     error
}
