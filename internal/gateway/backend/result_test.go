package backend

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResultJSON(t *testing.T) {
	t.Run("ok arm", func(t *testing.T) {
		var r Result[SessionInfo]
		require.NoError(t, json.Unmarshal([]byte(`{"ok":{"email":"a@b.c","nickname":"ace"}}`), &r))

		v, msg, ok := r.Unpack()
		require.True(t, ok)
		require.Empty(t, msg)
		require.Equal(t, "ace", v.Nickname)
	})

	t.Run("err arm", func(t *testing.T) {
		var r Result[string]
		require.NoError(t, json.Unmarshal([]byte(`{"err":"Invalid session"}`), &r))

		_, msg, ok := r.Unpack()
		require.False(t, ok)
		require.Equal(t, "Invalid session", msg)
	})

	t.Run("null payload", func(t *testing.T) {
		var r Result[*Game]
		require.NoError(t, json.Unmarshal([]byte(`{"ok":null}`), &r))
		v, _, ok := r.Unpack()
		require.True(t, ok)
		require.Nil(t, v)
	})

	t.Run("rejects ambiguous shapes", func(t *testing.T) {
		for _, body := range []string{`{}`, `{"ok":"x","err":"y"}`, `{"other":1}`} {
			var r Result[string]
			require.Error(t, json.Unmarshal([]byte(body), &r), body)
		}
	})

	t.Run("marshal", func(t *testing.T) {
		b, err := json.Marshal(Ok("done"))
		require.NoError(t, err)
		require.JSONEq(t, `{"ok":"done"}`, string(b))

		b, err = json.Marshal(Err[string](""))
		require.NoError(t, err)
		require.JSONEq(t, `{"err":"Unexpected response from backend"}`, string(b))
	})
}
