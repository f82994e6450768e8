package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/niklaus3016/gaoqianleme/pkg/errorx"
)

func Test_IsRateLimit(t *testing.T) {
	seconds, ok := IsRateLimit(wrapRateLimit(7))
	require.True(t, ok)
	require.Equal(t, 7, seconds)

	_, ok = IsRateLimit(errors.New("boom"))
	require.False(t, ok)

	_, ok = IsRateLimit(nil)
	require.False(t, ok)
}

func Test_parseWaitSeconds(t *testing.T) {
	seconds, ok := parseWaitSeconds(errorx.New(errorx.Unavailable, "请等待 5 秒后再试"))
	require.True(t, ok)
	require.Equal(t, 5, seconds)

	seconds, ok = parseWaitSeconds(errorx.New(errorx.Unavailable, "请等待10秒"))
	require.True(t, ok)
	require.Equal(t, 10, seconds)

	_, ok = parseWaitSeconds(errorx.New(errorx.Unavailable, "金币不足"))
	require.False(t, ok)
}
