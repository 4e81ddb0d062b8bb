package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestResolveLocaleFromAcceptLanguage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := map[string]string{
		"":                      LocaleEN,
		"ur-PK,ur;q=0.9":        LocaleUR,
		"fr-FR,en-US;q=0.8":     LocaleEN,
		"de-DE":                 LocaleEN,
		" en-GB ; q=1, ur;q=.5": LocaleEN,
	}
	for header, want := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/", nil)
		if header != "" {
			c.Request.Header.Set("Accept-Language", header)
		}
		if got := ResolveLocale(c); got != want {
			t.Fatalf("header %q: want %s got %s", header, want, got)
		}
	}
}

func TestTFallsBackToEnglishThenKey(t *testing.T) {
	if got := T(LocaleUR, "error.area_invalid"); got != "Please select your area." {
		t.Fatalf("want english fallback got %q", got)
	}
	if got := T(LocaleEN, "error.unknown_key"); got != "error.unknown_key" {
		t.Fatalf("want key echo got %q", got)
	}
}

func TestSprintfFormatsCheckoutFailure(t *testing.T) {
	got := Sprintf(LocaleEN, "error.checkout_failed", "foreign key violation")
	want := "Something went wrong while placing your order: foreign key violation"
	if got != want {
		t.Fatalf("want %q got %q", want, got)
	}
}
