package menu

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsDuplicateID(t *testing.T) {
	_, err := New("x", Linux,
		Submenu("File", Action(FileNew, "New", "")),
		Submenu("Other", Action(FileNew, "New Again", "")),
	)
	require.ErrorIs(t, err, ErrDuplicateID)
	assert.Contains(t, err.Error(), "file.new")
}

func TestNewRejectsInvalidNodes(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		want  error
	}{
		{"no submenus", nil, ErrInvalidNode},
		{"top-level action", []Item{Action(FileNew, "New", "")}, ErrInvalidNode},
		{"empty submenu", []Item{Submenu("File")}, ErrInvalidNode},
		{"untitled submenu", []Item{Submenu("", Separator())}, ErrInvalidNode},
		{"action without id", []Item{Submenu("File", Action("", "New", ""))}, ErrInvalidNode},
		{"action without title", []Item{Submenu("File", Action(FileNew, " ", ""))}, ErrInvalidNode},
		{"unknown role", []Item{Submenu("File", Predefined("explode"))}, ErrInvalidNode},
		{"unknown kind", []Item{Submenu("File", Item{Kind: 42})}, ErrInvalidNode},
		{"bad accelerator", []Item{Submenu("File", Action(FileNew, "New", "Hyper+N"))}, ErrInvalidAccelerator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("x", Linux, tt.items...)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuildUnknownPlatform(t *testing.T) {
	m, err := Build("plan9")
	require.NoError(t, err, "unknown platforms use the default layout")
	assert.Equal(t, 5, m.Len())
}

func TestMenuIsImmutable(t *testing.T) {
	m, err := Build(Linux)
	require.NoError(t, err)

	items := m.Items()
	items[0].Title = "Changed"
	items[0].Items[0].ID = "file.changed"

	sub, ok := m.Submenu("File")
	require.True(t, ok)
	sub.Items[1].Title = "Changed"

	m.Walk(func(_ []string, it Item) bool {
		it.Title = "Changed"
		return true
	})

	fresh, err := Build(Linux)
	require.NoError(t, err)
	assert.Equal(t, fresh.Items(), m.Items())
}

func TestWalkPathsAndStop(t *testing.T) {
	m, err := Build(Darwin)
	require.NoError(t, err)

	var path []string
	m.Walk(func(p []string, it Item) bool {
		if it.Kind == KindAction && it.ID == ViewZoomIn {
			path = p
			return false
		}
		return true
	})
	assert.Equal(t, []string{"View"}, path)

	visited := 0
	m.Walk(func(_ []string, _ Item) bool {
		visited++
		return visited < 3
	})
	assert.Equal(t, 3, visited)
}

func TestFind(t *testing.T) {
	m, err := Build(Linux)
	require.NoError(t, err)

	it, ok := m.Find(FileSaveAs)
	require.True(t, ok)
	assert.Equal(t, "Save As...", it.Title)

	_, ok = m.Find("file.print")
	assert.False(t, ok)
}

func TestResolved(t *testing.T) {
	tests := []struct {
		platform Platform
		want     Accelerator
	}{
		{Darwin, "Cmd+Shift+S"},
		{Linux, "Ctrl+Shift+S"},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			m, err := Build(tt.platform)
			require.NoError(t, err)

			it, ok := m.Resolved().Find(FileSaveAs)
			require.True(t, ok)
			assert.Equal(t, tt.want, it.Accelerator)

			orig, _ := m.Find(FileSaveAs)
			assert.Equal(t, Accelerator("CmdOrCtrl+Shift+S"), orig.Accelerator)
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	m, err := Build(Linux)
	require.NoError(t, err)

	b, err := json.Marshal(m)
	require.NoError(t, err)

	var doc struct {
		Title    string `json:"title"`
		Platform string `json:"platform"`
		Items    []struct {
			Kind  string `json:"kind"`
			Title string `json:"title"`
			Items []struct {
				Kind        string `json:"kind"`
				ID          string `json:"id"`
				Role        string `json:"role"`
				Accelerator string `json:"accelerator"`
			} `json:"items"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(b, &doc))

	assert.Equal(t, AppName, doc.Title)
	assert.Equal(t, "linux", doc.Platform)
	require.Len(t, doc.Items, 5)
	assert.Equal(t, "submenu", doc.Items[0].Kind)
	assert.Equal(t, "action", doc.Items[0].Items[0].Kind)
	assert.Equal(t, "file.new", doc.Items[0].Items[0].ID)
	assert.Equal(t, "CmdOrCtrl+N", doc.Items[0].Items[0].Accelerator)
	assert.Equal(t, "separator", doc.Items[0].Items[4].Kind)
	assert.Equal(t, "close_window", doc.Items[0].Items[7].Role)
}
