package cmd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClose_ClosesEverySessionOnce(t *testing.T) {
	c1 := &fakeClient{}
	c2 := &fakeClient{}
	a := &fleetAgent{sessions: []*hostSession{
		{addr: "h1:22", client: c1},
		{addr: "h2:22", client: c2},
	}}

	a.close()
	require.True(t, a.closed)
	require.Empty(t, a.sessions)
	require.Equal(t, 1, c1.closes)
	require.Equal(t, 1, c2.closes)
}

func TestClose_Idempotent(t *testing.T) {
	c := &fakeClient{}
	a := &fleetAgent{sessions: []*hostSession{{addr: "h1:22", client: c}}}

	a.close()
	a.close()
	require.Equal(t, 1, c.closes)
}

func TestClose_SessionCloseErrorsAreSwallowed(t *testing.T) {
	c1 := &fakeClient{closeErr: fmt.Errorf("broken pipe")}
	c2 := &fakeClient{}
	a := &fleetAgent{sessions: []*hostSession{
		{addr: "h1:22", client: c1},
		{addr: "h2:22", client: c2},
	}}

	// Must not panic or skip the remaining sessions
	a.close()
	require.Equal(t, 1, c1.closes)
	require.Equal(t, 1, c2.closes)
}
