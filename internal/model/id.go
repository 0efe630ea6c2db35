package model

import (
	"strconv"
	"sync"
	"time"
)

var (
	idMu      sync.Mutex
	lastStamp int64
)

// nextStamp returns a millisecond timestamp that is strictly increasing
// across calls, so ids minted in the same millisecond stay unique.
func nextStamp() int64 {
	idMu.Lock()
	defer idMu.Unlock()
	now := time.Now().UnixMilli()
	if now <= lastStamp {
		now = lastStamp + 1
	}
	lastStamp = now
	return now
}

// NewTaskID mints a time-based task token.
func NewTaskID() string {
	return strconv.FormatInt(nextStamp(), 10)
}

// NewSubTaskID mints a time-based sub-task id.
func NewSubTaskID() int64 {
	return nextStamp()
}
