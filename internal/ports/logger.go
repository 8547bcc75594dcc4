package ports

import "github.com/bft-labs/normbridge/pkg/log"

// Logger is the structured logger used across the pipeline.
type Logger = log.Logger

// Field is a key-value pair attached to a log entry.
type Field = log.Field
