package scoring

import (
	"github.com/samber/lo"

	"github.com/neuromesh-project/neuromesh/pkg/protocol"
	"github.com/neuromesh-project/neuromesh/pkg/transport"
)

// ExactMatchRewards scores each response 1.0 when its output matches the
// protocol transform of the query, and 0.0 otherwise. Timed-out responses
// carry the protocol default output, so they score 0.0 naturally.
func ExactMatchRewards(query int64, responses []transport.Response) []float64 {
	expected := protocol.Transform(query)
	return lo.Map(responses, func(response transport.Response, _ int) float64 {
		if response.Output() == expected {
			return 1.0
		}
		return 0.0
	})
}
