package snowflake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewCustomGenerator(t *testing.T) {
	testcases := []struct {
		name        string
		nodeId      uint
		apps        uint
		wantErrFunc require.ErrorAssertionFunc
	}{
		{
			name:   "nodeId超出限制",
			nodeId: 32,
			apps:   3,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedNode)
			},
		},
		{
			name:   "appId超出限制",
			nodeId: 3,
			apps:   33,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedApp)
			},
		},
		{
			name:        "生成正常",
			nodeId:      0,
			apps:        3,
			wantErrFunc: require.NoError,
		},
	}
	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCustomGenerator(tt.nodeId, tt.apps)
			tt.wantErrFunc(t, err)
		})
	}
}

func Test_Generate(t *testing.T) {
	gen, err := NewCustomGenerator(0, 3)
	require.NoError(t, err)

	testcases := []struct {
		name        string
		appid       AppID
		wantErrFunc require.ErrorAssertionFunc
	}{
		{
			name:        "diagnostic序列号",
			appid:       AppDiagnostic,
			wantErrFunc: require.NoError,
		},
		{
			name:        "forum序列号",
			appid:       AppForum,
			wantErrFunc: require.NoError,
		},
		{
			name:  "未注册的app",
			appid: AppID(9),
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrUnknownApp)
			},
		},
	}
	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			id, err := gen.Generate(tt.appid)
			tt.wantErrFunc(t, err)
			if err == nil {
				assert.Equal(t, tt.appid, id.AppID())
				assert.True(t, id.Int64() > 0)
			}
		})
	}
}
