package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUnmarshalJSON_String(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"750ms"`), &d))
	require.Equal(t, 750*time.Millisecond, d.Duration)
}

func TestUnmarshalJSON_Number(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	require.Equal(t, time.Second, d.Duration)
}

func TestUnmarshalJSON_Invalid(t *testing.T) {
	var d Duration
	require.Error(t, json.Unmarshal([]byte(`"not a duration"`), &d))
	require.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestMarshalJSON_RoundTrip(t *testing.T) {
	in := Duration{Duration: 3 * time.Second}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.Equal(t, `"3s"`, string(data))

	var out Duration
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, in.Duration, out.Duration)
}
