package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/nextsound/nextsound/internal/catalog"
)

var _ list.Item = trackItem{}

// trackItem wraps [catalog.Track] to implement [list.Item].
type trackItem struct {
	track catalog.Track
	exact bool
}

func (i trackItem) FilterValue() string { return i.track.DisplayTitle() }

func (i trackItem) Title() string {
	if i.exact {
		return styles.ok.Render("★ ") + i.track.DisplayTitle()
	}
	return i.track.DisplayTitle()
}

func (i trackItem) Description() string {
	desc := i.track.Artist
	if i.track.Album != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.track.Album)
	}
	if i.track.Year > 0 {
		desc = fmt.Sprintf("%s • %d", desc, i.track.Year)
	}
	return desc
}
