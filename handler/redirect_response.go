package handler

import (
	"net/http"
	"net/url"
)

type redirectResponse struct {
	url  string
	code int
}

func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	target := r.url
	if !isLocalURL(target) {
		target = "/"
	}
	if IsDataStar(req) {
		return NewSSE(w, req).Redirect(target)
	}
	http.Redirect(w, req, target, r.code)
	return nil
}

// Redirect answers 303 See Other, or a client-side navigation for datastar.
// Only same-site paths are followed; anything else goes to "/".
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusSeeOther}
}

func isLocalURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == "" && len(raw) > 0 && raw[0] == '/' && (len(raw) == 1 || (raw[1] != '/' && raw[1] != '\\'))
}
