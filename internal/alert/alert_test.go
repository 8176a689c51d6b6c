package alert

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGate_Alert(t *testing.T) {
	var got []string
	g := NewGate(func(title, body string) { got = append(got, title+"|"+body) })

	g.Alert("outbid", "someone bid higher")
	require.Empty(t, got, "no delivery before permission")

	g.Grant()
	require.True(t, g.Granted())
	g.Alert("outbid", "someone bid higher")
	require.Equal(t, []string{"outbid|someone bid higher"}, got)

	g.Revoke()
	g.Alert("won", "you won")
	require.Len(t, got, 1)
}

func TestGate_DefaultSink(t *testing.T) {
	g := NewGate(nil)
	g.Grant()
	require.NotPanics(t, func() { g.Alert("title", "body") })
}
