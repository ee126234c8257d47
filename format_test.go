package sqlerror

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Concise(t *testing.T) {
	t.Parallel()

	e := Syntax("bad token").WithState(StateSyntaxError).WithVendorCode(1064)
	assert.Equal(t, "bad token (sqlstate=42000 vendor=1064)", fmt.Sprintf("%v", e))
	assert.Equal(t, "bad token (sqlstate=42000 vendor=1064)", fmt.Sprintf("%s", e))
	assert.Equal(t, `"bad token (sqlstate=42000 vendor=1064)"`, fmt.Sprintf("%q", e))
}

func TestFormat_VerboseChain(t *testing.T) {
	t.Parallel()

	a := Syntax("bad token").
		WithState(StateSyntaxError).
		WithVendorCode(1064).
		With("statement", 3).
		WithCause(io.ErrUnexpectedEOF)
	b := BatchUpdate("batch failed", []int32{1})
	require.NoError(t, a.Append(b))

	want := strings.Join([]string{
		`category=syntax error sqlstate=42000 vendor=1064 msg="bad token"`,
		`ctx: statement=3`,
		`caused by: unexpected EOF`,
		`next: category=batch update msg="batch failed"`,
		`update counts: [1]`,
	}, "\n")
	assert.Equal(t, want, fmt.Sprintf("%+v", a))
}

func TestFormat_VerboseRecordCause(t *testing.T) {
	t.Parallel()

	e := New("commit failed", "", 0).WithCause(Transient("lock timeout"))
	want := "category=sql error msg=\"commit failed\"\ncaused by: category=transient msg=\"lock timeout\""
	assert.Equal(t, want, fmt.Sprintf("%+v", e))
}

func TestFormat_VerboseStack(t *testing.T) {
	t.Parallel()

	out := fmt.Sprintf("%+v", New("x", "", 0).WithStack())
	assert.Contains(t, out, "\nstack:\n  ")
	assert.Contains(t, out, "TestFormat_VerboseStack")
}

func TestFormat_InsideFmtErrorf(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("save order: %w", Timeout("statement timeout"))
	assert.Equal(t, "save order: statement timeout (sqlstate=HYT00)", err.Error())
}
