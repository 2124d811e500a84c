package shell

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/jot/pkg/dispatch"
	"github.com/mchmarny/jot/pkg/menu"
	"github.com/mchmarny/jot/pkg/server"
)

func newShell(t *testing.T, p menu.Platform) (*Shell, http.Handler) {
	t.Helper()

	m, err := menu.Build(p)
	require.NoError(t, err)

	events := NewBroadcaster(8, nil)
	s := New(m, dispatch.New(events), events)

	return s, server.New(s.Options()...).Handler()
}

// pending counts notifications buffered but not yet received.
func pending(b *Broadcaster) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := 0
	for _, ch := range b.subs {
		n += len(ch)
	}
	return n
}

func TestMenuRoute(t *testing.T) {
	_, h := newShell(t, menu.Darwin)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/menu", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var doc struct {
		Platform string `json:"platform"`
		Items    []struct {
			Title string `json:"title"`
			Items []struct {
				ID          string `json:"id"`
				Accelerator string `json:"accelerator"`
			} `json:"items"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

	assert.Equal(t, "darwin", doc.Platform)
	require.Len(t, doc.Items, 6)
	assert.Equal(t, "Jot", doc.Items[0].Title)
	assert.Equal(t, "file.new", doc.Items[1].Items[0].ID)
	assert.Equal(t, "Cmd+N", doc.Items[1].Items[0].Accelerator)
}

func TestActivateRoute(t *testing.T) {
	s, h := newShell(t, menu.Linux)

	ch, cancel := s.events.Subscribe()
	defer cancel()

	tests := []struct {
		id        string
		forwarded bool
	}{
		{"file.save", true},
		{"view.theme.dark", true},
		{"copy", false},
		{"nope", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/activate/"+tt.id, nil))
			require.Equal(t, http.StatusAccepted, rec.Code)

			var resp struct {
				ID        string `json:"id"`
				Forwarded bool   `json:"forwarded"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.id, resp.ID)
			assert.Equal(t, tt.forwarded, resp.Forwarded)
		})
	}

	assert.Equal(t, note("file.save"), <-ch)
	assert.Equal(t, note("view.theme.dark"), <-ch)
	assert.Empty(t, ch)
}

func TestEventsRoute(t *testing.T) {
	s, h := newShell(t, menu.Linux)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.ServeHTTP(rec, req)
	}()

	require.Eventually(t, func() bool { return s.events.Subscribers() == 1 },
		2*time.Second, 5*time.Millisecond)

	s.Activate("view.zoom_in")
	s.Activate("view.zoom_in")
	s.Activate("undo")

	require.Eventually(t, func() bool { return pending(s.events) == 0 },
		2*time.Second, 5*time.Millisecond)

	cancel()
	<-done

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t,
		"event: menu-action\ndata: view.zoom_in\n\nevent: menu-action\ndata: view.zoom_in\n\n",
		rec.Body.String())
	assert.Zero(t, s.events.Subscribers())
}

func TestShellMenuAccessor(t *testing.T) {
	s, _ := newShell(t, menu.Windows)
	assert.Equal(t, menu.Windows, s.Menu().Platform())
}

func TestRunShutsDownWithOpenStream(t *testing.T) {
	s, _ := newShell(t, menu.Linux)
	srv := server.New(append(s.Options(),
		server.WithPort(0),
		server.WithShutdownTimeout(2*time.Second),
	)...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()
	require.Eventually(t, srv.IsRunning, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://%s/events", srv.Addr()))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Eventually(t, func() bool { return s.events.Subscribers() == 1 },
		2*time.Second, 5*time.Millisecond)

	start := time.Now()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}

	assert.Less(t, time.Since(start), time.Second)
	assert.Eventually(t, func() bool { return s.events.Subscribers() == 0 },
		time.Second, 5*time.Millisecond)
}
