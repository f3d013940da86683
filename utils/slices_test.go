package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a1", "b2", "b2"}, "b2"), "first match wins")
	require.Equal(t, -1, FindIndex([]string{"a1"}, "c3"))
	require.Equal(t, -1, FindIndex(nil, 3))
}

func TestCountFunc(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }
	require.Equal(t, 2, CountFunc([]int{1, 2, 3, 4}, even))
	require.Zero(t, CountFunc(nil, even))
}

func TestRandomSeed(t *testing.T) {
	require.NotEqual(t, RandomSeed(), RandomSeed(), "Each call draws fresh entropy")
}
