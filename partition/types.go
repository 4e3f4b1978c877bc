package partition

import "errors"

// ErrNilGraph indicates a nil *core.Graph was passed in.
var ErrNilGraph = errors.New("partition: graph is nil")

// ErrRootNotFound indicates SpanningTree's root vertex does not exist.
var ErrRootNotFound = errors.New("partition: root vertex not found")

// ErrTooManyVertices indicates ExhaustivePartition was asked to search a
// graph with more than 63 vertices, past the uint64 bitmask's subset
// capacity.
var ErrTooManyVertices = errors.New("partition: graph has too many vertices for exhaustive bitmask search (limit 63)")

// ErrInvalidPartCount indicates k was requested as less than 1 or
// greater than the number of vertices.
var ErrInvalidPartCount = errors.New("partition: k must be between 1 and the vertex count")

const maxBitmaskVertices = 63
