package envconfig

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"false": slog.LevelInfo,
		"0":     slog.LevelInfo,
		"true":  slog.LevelDebug,
		"1":     slog.LevelDebug,
		"2":     slog.Level(-8),
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv("SIMNET_DEBUG", k)
			assert.Equal(t, v, LogLevel())
		})
	}
}

func TestSeed(t *testing.T) {
	cases := map[string]uint64{
		"":        0,
		"42":      42,
		"'7'":     7,
		" 9 ":     9,
		"-1":      0,
		"garbage": 0,
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv("SIMNET_SEED", k)
			assert.Equal(t, v, Seed())
		})
	}
}

func TestVar(t *testing.T) {
	t.Setenv("SIMNET_TEST", `  "quoted"  `)
	assert.Equal(t, "quoted", Var("SIMNET_TEST"))
}

func TestAsMap(t *testing.T) {
	t.Setenv("SIMNET_SEED", "3")
	m := AsMap()
	assert.Len(t, m, 2)
	assert.Equal(t, uint64(3), m["SIMNET_SEED"].Value)
}
