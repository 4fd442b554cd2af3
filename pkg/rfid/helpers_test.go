package rfid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Syfaro/ZebraRfid/pkg/sdk"
	"github.com/Syfaro/ZebraRfid/pkg/subscription"
)

func newTestManager(t *testing.T) (*Manager, *stubAPI) {
	t.Helper()
	api := &stubAPI{}
	m := NewManager(api, Config{SessionID: "test-session"})
	t.Cleanup(func() { m.Close() })
	return m, api
}

// startManager starts m and returns the delegate it registered.
func startManager(t *testing.T, m *Manager, api *stubAPI) sdk.Delegate {
	t.Helper()
	var delegate sdk.Delegate
	api.On("SetDelegate", mock.Anything).Run(func(args mock.Arguments) {
		delegate = args.Get(0).(sdk.Delegate)
	}).Return(sdk.ResultSuccess).Once()

	require.NoError(t, m.Start())
	require.NotNil(t, delegate)
	return delegate
}

// setStatus returns a Run function that writes msg into the status
// out-parameter at index idx.
func setStatus(idx int, msg string) func(mock.Arguments) {
	return func(args mock.Arguments) {
		*args.Get(idx).(*string) = msg
	}
}

func collect(t *testing.T, sub *subscription.Subscription[Event], n int) []Event {
	t.Helper()
	events := make([]Event, 0, n)
	timeout := time.After(2 * time.Second)
	for len(events) < n {
		select {
		case ev, ok := <-sub.C():
			if !ok {
				t.Fatalf("subscription closed after %d of %d events", len(events), n)
			}
			events = append(events, ev)
		case <-timeout:
			t.Fatalf("timed out after %d of %d events", len(events), n)
		}
	}
	return events
}

func assertNoEvent(t *testing.T, sub *subscription.Subscription[Event]) {
	t.Helper()
	select {
	case ev, ok := <-sub.C():
		if ok {
			t.Fatalf("unexpected event %#v", ev)
		}
	case <-time.After(50 * time.Millisecond):
	}
}
