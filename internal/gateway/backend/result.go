package backend

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Result is the backend's two-variant reply: a success payload or a failure
// message. Callers match it with Unpack and must handle both arms.
type Result[T any] struct {
	value T
	err   string
	ok    bool
}

// Ok builds a success result.
func Ok[T any](v T) Result[T] { return Result[T]{value: v, ok: true} }

// Err builds a failure result. An empty message is replaced so the failure
// arm always carries text.
func Err[T any](msg string) Result[T] {
	if msg == "" {
		msg = "Unexpected response from backend"
	}
	return Result[T]{err: msg}
}

// Unpack returns the payload and true, or the failure message and false.
func (r Result[T]) Unpack() (T, string, bool) {
	return r.value, r.err, r.ok
}

var errResultShape = errors.New("backend: result must carry exactly one of ok or err")

func (r Result[T]) MarshalJSON() ([]byte, error) {
	if !r.ok {
		return json.Marshal(struct {
			Err string `json:"err"`
		}{r.err})
	}
	return json.Marshal(struct {
		Ok T `json:"ok"`
	}{r.value})
}

func (r *Result[T]) UnmarshalJSON(data []byte) error {
	var w map[string]json.RawMessage
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	okRaw, hasOk := w["ok"]
	errRaw, hasErr := w["err"]

	switch {
	case hasOk && !hasErr:
		var v T
		if !bytes.Equal(okRaw, []byte("null")) {
			if err := json.Unmarshal(okRaw, &v); err != nil {
				return err
			}
		}
		*r = Ok(v)
	case hasErr && !hasOk:
		var msg string
		if err := json.Unmarshal(errRaw, &msg); err != nil {
			return err
		}
		*r = Err[T](msg)
	default:
		return errResultShape
	}
	return nil
}
