package i18n

import "testing"

func TestSupported(t *testing.T) {
	for _, code := range []Language{Arabic, English, Urdu, Indonesian, Turkish, French, Malay, Bengali, Persian, Pashto, Chinese, Russian} {
		if !Supported(code) {
			t.Errorf("Supported(%s) = false", code)
		}
	}
	for _, code := range []Language{"", "xx", "AR", "en-US"} {
		if Supported(code) {
			t.Errorf("Supported(%q) = true", code)
		}
	}
}

func TestDir(t *testing.T) {
	rtl := map[Language]bool{Arabic: true, Urdu: true, Persian: true, Pashto: true}
	for _, d := range DisplayNames() {
		want := "ltr"
		if rtl[d.Code] {
			want = "rtl"
		}
		if got := Dir(d.Code); got != want {
			t.Errorf("Dir(%s) = %s, want %s", d.Code, got, want)
		}
	}
}

func TestTranslateFallback(t *testing.T) {
	// Locale table hit.
	if got := Translate(Arabic, "home"); got != "الرئيسية" {
		t.Errorf("ar home = %q", got)
	}
	// Partial table falls back to English.
	if got := Translate(Russian, "enterPin"); got != "Enter PIN" {
		t.Errorf("ru fallback = %q", got)
	}
	// Unknown key comes back verbatim.
	if got := Translate(English, "noSuchKey"); got != "noSuchKey" {
		t.Errorf("missing key = %q", got)
	}
	// Unsupported locale behaves like the default table.
	if got := Translate("xx", "wallet"); got != "Wallet" {
		t.Errorf("unknown locale = %q", got)
	}
}

func TestTranslateIsTotalOverVocabulary(t *testing.T) {
	for _, d := range DisplayNames() {
		for key := range english {
			if got := Translate(d.Code, key); got == "" {
				t.Errorf("Translate(%s, %q) = empty", d.Code, key)
			}
		}
	}
}

func TestTranslatorBindsLanguage(t *testing.T) {
	tr := Translator(Urdu)
	if got := tr("home"); got != "ہوم" {
		t.Errorf("ur home = %q", got)
	}
}

func TestDisplayNames(t *testing.T) {
	names := DisplayNames()
	if len(names) != 12 {
		t.Fatalf("len = %d, want 12", len(names))
	}
	if names[0].Code != Arabic || names[0].Native != "العربية" {
		t.Errorf("first entry = %+v", names[0])
	}
	seen := make(map[Language]struct{})
	for _, d := range names {
		if !Supported(d.Code) {
			t.Errorf("%s listed but not supported", d.Code)
		}
		if _, dup := seen[d.Code]; dup {
			t.Errorf("%s listed twice", d.Code)
		}
		seen[d.Code] = struct{}{}
		if d.Name == "" || d.Native == "" {
			t.Errorf("%s has empty names", d.Code)
		}
	}
}
