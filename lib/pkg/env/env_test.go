package env

import (
	"os"
	"testing"
)

func TestString(t *testing.T) {
	withClearedEnv([]string{"ENV_TEST_STRING"}, func() {
		if got := String("ENV_TEST_STRING", "fallback"); got != "fallback" {
			t.Errorf("String = %q, want %q", got, "fallback")
		}
		os.Setenv("ENV_TEST_STRING", "value")
		if got := String("ENV_TEST_STRING", "fallback"); got != "value" {
			t.Errorf("String = %q, want %q", got, "value")
		}
	})
}

func TestMustString_Missing(t *testing.T) {
	withClearedEnv([]string{"ENV_TEST_MUST"}, func() {
		assertPanicContains(t, []string{"ENV_TEST_MUST"}, func() {
			MustString("ENV_TEST_MUST")
		})
	})
}

func TestBool(t *testing.T) {
	withClearedEnv([]string{"ENV_TEST_BOOL"}, func() {
		if Bool("ENV_TEST_BOOL", true) != true {
			t.Error("unset key must return the default")
		}
		for _, v := range []string{"true", "True", "TRUE"} {
			os.Setenv("ENV_TEST_BOOL", v)
			if !Bool("ENV_TEST_BOOL", false) {
				t.Errorf("Bool(%q) = false, want true", v)
			}
		}
		for _, v := range []string{"false", "False", "0", "yes"} {
			os.Setenv("ENV_TEST_BOOL", v)
			if Bool("ENV_TEST_BOOL", true) {
				t.Errorf("Bool(%q) = true, want false", v)
			}
		}
	})
}

func TestCheck_Missing(t *testing.T) {
	withClearedEnv([]string{"ENV_TEST_CHECK"}, func() {
		assertPanicContains(t, []string{"ENV_TEST_CHECK", "the check description"}, func() {
			Check("ENV_TEST_CHECK", "the check description")
		})
	})
}
