package agora

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokensEmptyWithoutCredentials(t *testing.T) {
	tests := []struct {
		name string
		svc  TokenService
	}{
		{"no app id", TokenService{AppCertificate: "cert", TTLSeconds: 3600}},
		{"no certificate", TokenService{AppID: "app", TTLSeconds: 3600}},
		{"neither", TokenService{TTLSeconds: 3600}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rtc, err := tt.svc.RTCToken("any-channel", 1234)
			require.NoError(t, err)
			assert.Empty(t, rtc)

			rtm, err := tt.svc.RTMToken("any-user")
			require.NoError(t, err)
			assert.Empty(t, rtm)
		})
	}
}

func TestTokensBuiltWithCredentials(t *testing.T) {
	svc := TokenService{
		AppID:          "970CA35de60c44645bbae8a215061b33",
		AppCertificate: "5CFd2fd1755d40ecb72977518be15d3b",
		TTLSeconds:     3600,
	}

	rtc, err := svc.RTCToken("test-channel", 2882341273)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rtc, "007"), "rtc token should carry the AccessToken2 version prefix")

	rtm, err := svc.RTMToken("learner-1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rtm, "007"), "rtm token should carry the AccessToken2 version prefix")

	assert.NotEqual(t, rtc, rtm)
}

func TestNumericUID(t *testing.T) {
	a := NumericUID("abcd1234")
	b := NumericUID("abcd1234")
	assert.Equal(t, a, b, "mapping must be stable across calls")
	assert.Less(t, a, uint32(100000000))

	assert.NotEqual(t, NumericUID("user-a"), NumericUID("user-b"))
}
