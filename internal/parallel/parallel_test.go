package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForVisitsEveryIndexOnce(t *testing.T) {
	for _, cfg := range []Config{
		{Enabled: false},
		{Enabled: true, NumWorkers: 4, MinItems: 2},
		{Enabled: true, NumWorkers: 64, MinItems: 1},
	} {
		const n = 1000
		var hits [n]atomic.Int32
		For(n, func(i int) { hits[i].Add(1) }, cfg)
		for i := range hits {
			assert.Equal(t, int32(1), hits[i].Load(), "index %d with %+v", i, cfg)
		}
	}
}

func TestForEmpty(t *testing.T) {
	called := false
	For(0, func(int) { called = true }, DefaultConfig())
	assert.False(t, called)
}
