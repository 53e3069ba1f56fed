package core

import (
	"net/url"
	"regexp"
	"strings"
)

// videoIDPattern matches the 11 character ids used by YouTube.
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ParseVideoID extracts the external video id from a pasted link.
//
// Accepted forms:
//   - https://www.youtube.com/watch?v=ID (any extra query parameters)
//   - https://youtu.be/ID
//   - https://www.youtube.com/embed/ID, /v/ID, /e/ID, /shorts/ID, /live/ID
//
// Returns ErrInvalidVideoURL if no id can be found.
func ParseVideoID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidVideoURL
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", ErrInvalidVideoURL
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")

	var candidate string
	switch host {
	case "youtu.be":
		candidate = segments[0]
	case "youtube.com", "youtube-nocookie.com", "music.youtube.com":
		if v := u.Query().Get("v"); v != "" {
			candidate = v
			break
		}
		if len(segments) >= 2 {
			switch segments[0] {
			case "embed", "v", "e", "shorts", "live":
				candidate = segments[1]
			}
		}
	}

	if !videoIDPattern.MatchString(candidate) {
		return "", ErrInvalidVideoURL
	}
	return candidate, nil
}
