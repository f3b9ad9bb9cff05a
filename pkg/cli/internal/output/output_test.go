package output

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	c := &Console{Name: "enable-endpoints", Out: &out, Err: &errOut}

	c.Info("Starting...")
	c.Raw("No match found.")
	c.Error(errors.New("boom"))

	assert.Equal(t, "enable-endpoints: Starting...\nNo match found.\n", out.String())
	assert.Equal(t, "enable-endpoints: Error: boom\n", errOut.String())
}

func TestConsole_Silent(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := &Console{Name: "x", Silent: true, Out: &out, Err: &out}

	c.Info("Done.")
	c.Raw("Aborted.")
	c.Error(errors.New("boom"))

	assert.Equal(t, "Aborted.\nx: Error: boom\n", out.String())
}

func TestJSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, JSON(&out, map[string]int{"count": 1}))
	assert.Equal(t, "{\n  \"count\": 1\n}\n", out.String())
}

func TestTable(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	w := Table(&out)
	_, _ = fmt.Fprintln(w, "API\tENDPOINT")
	_, _ = fmt.Fprintln(w, "Orders\tE1")
	require.NoError(t, w.Flush())
	assert.Equal(t, "API     ENDPOINT\nOrders  E1\n", out.String())
}
