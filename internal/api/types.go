package api

import (
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records metrics for backend calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
