package shared

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	videoIDPattern    = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	playlistIDPattern = regexp.MustCompile(`^(PL|UU|LL|OL|RD|FL)[A-Za-z0-9_-]+$`)
)

// ExtractVideoID resolves a raw request string into a canonical YouTube
// video ID. Accepts bare 11-character IDs, youtu.be short links, and
// youtube.com watch/embed/v/shorts/live URLs. Returns "" when no ID can be
// extracted.
func ExtractVideoID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if videoIDPattern.MatchString(raw) {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")

	switch {
	case host == "youtu.be":
		id := strings.Trim(u.Path, "/")
		if videoIDPattern.MatchString(id) {
			return id
		}
	case host == "youtube.com" || strings.HasSuffix(host, ".youtube.com"):
		if id := u.Query().Get("v"); videoIDPattern.MatchString(id) {
			return id
		}
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		for i, part := range parts {
			switch part {
			case "embed", "v", "shorts", "live":
				if i+1 < len(parts) && videoIDPattern.MatchString(parts[i+1]) {
					return parts[i+1]
				}
			}
		}
	}
	return ""
}

// ExtractPlaylistID resolves a raw request string into a YouTube playlist
// ID. Accepts bare playlist IDs and youtube.com URLs carrying a `list`
// query parameter. Returns "" when no ID can be extracted.
func ExtractPlaylistID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if playlistIDPattern.MatchString(raw) {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if host != "youtube.com" && !strings.HasSuffix(host, ".youtube.com") && host != "youtu.be" {
		return ""
	}
	if id := u.Query().Get("list"); playlistIDPattern.MatchString(id) {
		return id
	}
	return ""
}

// IsYouTubeURL reports whether the string looks like any YouTube URL.
// Mirrors the permissive validation the processing pipeline applies before
// attempting ID extraction.
func IsYouTubeURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	return host == "youtu.be" || host == "youtube.com" || strings.HasSuffix(host, ".youtube.com")
}
