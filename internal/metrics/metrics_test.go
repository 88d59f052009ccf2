package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCall(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	RecordCall("translate", 10*time.Millisecond, nil)
	RecordCall("translate", 30*time.Millisecond, errors.New("boom"))
	RecordCall("palette", 5*time.Millisecond, nil)

	snap := Snapshot()
	require.Len(t, snap, 2)

	assert.Equal(t, "palette", snap[0].Operation)
	assert.Equal(t, int64(1), snap[0].Calls)

	tr := snap[1]
	assert.Equal(t, "translate", tr.Operation)
	assert.Equal(t, int64(2), tr.Calls)
	assert.Equal(t, int64(1), tr.Errors)
	assert.InDelta(t, 20.0, tr.AverageLatencyMs, 0.001)
	assert.InDelta(t, 50.0, tr.ErrorRate, 0.001)
}

func TestSnapshot_Empty(t *testing.T) {
	Reset()
	assert.Empty(t, Snapshot())
}
