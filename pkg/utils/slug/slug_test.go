package slug

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Team Performance":     "team-performance",
		"Team Runs Comparison": "team-runs-comparison",
		"  Top   Batters ":     "top-batters",
		"Lord's Ground":        "lords-ground",
		"A / B":                "a-b",
		"":                     "",
		"---":                  "",
	}
	for in, want := range cases {
		require.Equal(t, want, Make(in), in)
	}
}
