package cli

import (
	"testing"
)

// TestExecute tests the Execute function
func TestExecute(t *testing.T) {
	// Execute is the entry point main uses. Run it once to make sure
	// the command tree is assembled without panicking. The returned
	// error depends on whatever args the test binary carries, so it
	// is ignored; command behavior is covered by the eval tests.
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Execute() panicked: %v", r)
		}
	}()

	_ = Execute()
}
