package queue

import "time"

const (
	DefaultQuietPeriod = 2 * time.Second
	DefaultRetryDelay  = time.Second
	DefaultBatchSize   = 10
)

type state int

const (
	stateIdle state = iota
	stateProcessing
)
