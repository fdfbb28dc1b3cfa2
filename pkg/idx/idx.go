package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is a lexicographically sortable ULID string, optionally carrying a
// short type prefix such as "anon_".
type ID string

// Zero represents the zero value ID.
const Zero ID = ""

// ErrInvalid reports a malformed ULID string.
var ErrInvalid = errors.New("idx: invalid ulid")

var (
	mu      sync.Mutex
	once    sync.Once
	entropy *ulid.MonotonicEntropy
)

func source() *ulid.MonotonicEntropy {
	once.Do(func() { entropy = ulid.Monotonic(rand.Reader, 0) })
	return entropy
}

// New returns a new ULID-based ID for the current UTC time.
func New() ID {
	return NewAt(time.Now().UTC())
}

// NewAt generates an ID at the provided time, useful for tests.
func NewAt(t time.Time) ID {
	mu.Lock()
	defer mu.Unlock()

	return ID(ulid.MustNew(ulid.Timestamp(t), source()).String())
}

// WithPrefix returns a fresh ID rendered as prefix + "_" + lowercase ULID,
// e.g. "anon_01j9...".
func WithPrefix(prefix string) ID {
	return ID(prefix + "_" + strings.ToLower(New().String()))
}

// Parse parses a bare ULID string into an ID and validates its form.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalid
	}
	if _, err := ulid.ParseStrict(strings.ToUpper(s)); err != nil {
		return Zero, ErrInvalid
	}
	return ID(s), nil
}

// ParsePrefixed validates an ID produced by WithPrefix for the given prefix.
func ParsePrefixed(prefix, s string) (ID, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(s), prefix+"_")
	if !ok {
		return Zero, ErrInvalid
	}
	if _, err := Parse(rest); err != nil {
		return Zero, err
	}
	return ID(prefix + "_" + rest), nil
}

// MustParse parses or panics. Useful for hard-coded IDs in tests.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool { return id == Zero }

// String returns the canonical string form.
func (id ID) String() string { return string(id) }

// Time extracts the embedded UTC timestamp from the ID, ignoring any prefix.
// Invalid or zero IDs return the zero time.
func (id ID) Time() time.Time {
	s := id.String()
	if i := strings.LastIndexByte(s, '_'); i >= 0 {
		s = s[i+1:]
	}
	u, err := ulid.ParseStrict(strings.ToUpper(s))
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time())
}

// Compare reports the lexical ordering between a and b.
func Compare(a, b ID) int {
	return strings.Compare(a.String(), b.String())
}
