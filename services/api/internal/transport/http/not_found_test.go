package http

import (
	"net/http"
	"testing"
)

func TestRouter_UnknownRoute(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&stubEvents{}, &stubProfiles{}, &stubReference{})
	rec := doRequest(t, router, http.MethodGet, "/tickets", "", nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.Code != codeNotFound {
		t.Fatalf("expected code %s, got %s", codeNotFound, resp.Code)
	}
	if resp.Error != "no route for GET /tickets" {
		t.Fatalf("unexpected message %q", resp.Error)
	}
}
