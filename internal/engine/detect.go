package engine

import (
	"net/url"
	"strings"
)

// DetectURLKind classifies a URL as a YouTube video, a YouTube channel,
// or a generic website. Classification never fails: anything that is not
// recognizably YouTube is a website.
func DetectURLKind(raw string) Kind {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return KindWebsite
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	host = strings.TrimPrefix(host, "m.")

	if host == "youtu.be" {
		return KindVideo
	}
	if host != "youtube.com" {
		return KindWebsite
	}

	path := u.Path
	switch {
	case strings.HasPrefix(path, "/watch"), strings.HasPrefix(path, "/shorts/"), strings.HasPrefix(path, "/embed/"):
		return KindVideo
	case strings.HasPrefix(path, "/channel/"), strings.HasPrefix(path, "/@"), strings.HasPrefix(path, "/c/"), strings.HasPrefix(path, "/user/"):
		return KindChannel
	}
	return KindWebsite
}
