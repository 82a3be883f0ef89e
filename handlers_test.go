package portfolio

import (
	"net/url"
	"testing"
)

func TestContactFormDecode(t *testing.T) {
	form := url.Values{
		"name":    {"Ada Lovelace"},
		"email":   {"ada@example.com"},
		"subject": {"Collaboration"},
		"message": {"Let's build something."},
		// Flags are server-owned; a crafted form must not set them.
		"read":    {"true"},
		"replied": {"true"},
		"_csrf":   {"token"},
	}

	var sub ContactSubmission
	if err := formDecoder.Decode(&sub, form); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if sub.Name != "Ada Lovelace" || sub.Email != "ada@example.com" {
		t.Errorf("decoded = %+v", sub)
	}
	if sub.Subject != "Collaboration" || sub.Message != "Let's build something." {
		t.Errorf("decoded = %+v", sub)
	}
	if sub.Read || sub.Replied {
		t.Error("read/replied must not be settable from the form")
	}
}
