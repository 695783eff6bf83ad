package testutil_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/octoclone/pkg/utils/testutil"
)

func TestGetEnvOrSkip(t *testing.T) {
	t.Run("returns value when set", func(t *testing.T) {
		t.Setenv("OCTOCLONE_TEST_ENV", "value")
		gt.V(t, testutil.GetEnvOrSkip(t, "OCTOCLONE_TEST_ENV")).Equal("value")
	})
}
