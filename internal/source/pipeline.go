package source

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nextsound/nextsound/internal/catalog"
)

// Listing quality policy. Fixed constants, applied to remote listings
// only; the local catalog satisfies them by construction.
const (
	minPopularity = 75
	maxPerArtist  = 1
	maxPerAlbum   = 2
)

// ambientPattern matches non-musical ambient/relaxation content by any
// substring hit on the track name. Inflected forms ("Relaxing",
// "Peaceful") must match, so terms are deliberately unanchored.
var ambientPattern = regexp.MustCompile(`(?i)sleep|white noise|rain|nature sounds|meditation|relax|ambient|loopable|asmr|calm|peaceful|gentle|soothing`)

// refineListing runs the remote-listing post-processing pipeline:
// dedupe by normalized (title, artist), drop ambient content, sort by
// popularity, cap items per artist and per album, drop low-popularity
// leftovers, and log an audit of the result. Every stage is stable so
// input order is the tiebreak throughout.
func refineListing(tracks []catalog.Track, logger *log.Logger) []catalog.Track {
	out := dedupe(tracks)
	out = dropAmbient(out)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Popularity > out[j].Popularity
	})

	out = enforceDiversity(out)
	out = dropUnpopular(out)

	auditListing(out, logger)
	return out
}

func dedupe(tracks []catalog.Track) []catalog.Track {
	seen := make(map[string]bool, len(tracks))
	out := make([]catalog.Track, 0, len(tracks))
	for _, t := range tracks {
		key := strings.ToLower(strings.TrimSpace(t.DisplayTitle())) + "\x00" + strings.ToLower(strings.TrimSpace(t.Artist))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}

// dropAmbient filters on the track name only; an ambient-sounding artist
// with a normal track name stays in.
func dropAmbient(tracks []catalog.Track) []catalog.Track {
	out := make([]catalog.Track, 0, len(tracks))
	for _, t := range tracks {
		if ambientPattern.MatchString(t.DisplayTitle()) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func enforceDiversity(tracks []catalog.Track) []catalog.Track {
	perArtist := make(map[string]int)
	perAlbum := make(map[string]int)
	out := make([]catalog.Track, 0, len(tracks))
	for _, t := range tracks {
		artist := strings.ToLower(strings.TrimSpace(t.Artist))
		album := strings.ToLower(strings.TrimSpace(t.Album))

		// An artistless track can't be diversity-checked; it doesn't
		// belong in a curated listing either.
		if artist == "" {
			continue
		}
		if perArtist[artist] >= maxPerArtist {
			continue
		}
		if album != "" && perAlbum[album] >= maxPerAlbum {
			continue
		}

		perArtist[artist]++
		perAlbum[album]++
		out = append(out, t)
	}
	return out
}

func dropUnpopular(tracks []catalog.Track) []catalog.Track {
	out := make([]catalog.Track, 0, len(tracks))
	for _, t := range tracks {
		if t.Popularity < minPopularity {
			continue
		}
		out = append(out, t)
	}
	return out
}

// auditListing logs artist repetition and average popularity so listing
// quality regressions show up in the logs.
func auditListing(tracks []catalog.Track, logger *log.Logger) {
	if logger == nil || len(tracks) == 0 {
		return
	}

	artists := make(map[string]int, len(tracks))
	total := 0
	for _, t := range tracks {
		artists[strings.ToLower(t.Artist)]++
		total += t.Popularity
	}

	repeats := 0
	for _, n := range artists {
		if n > 1 {
			repeats++
		}
	}

	logger.Debug("listing audit",
		"items", len(tracks),
		"unique_artists", len(artists),
		"repeated_artists", repeats,
		"avg_popularity", fmt.Sprintf("%.1f", float64(total)/float64(len(tracks))),
	)
}
