package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []TaskStatus{StatusPending, StatusInProgress, StatusCompleted, StatusOnHold} {
		assert.True(t, ValidStatus(s), "status %q", s)
	}

	for _, s := range []TaskStatus{"", "pending", "Done", "IN PROGRESS"} {
		assert.False(t, ValidStatus(s), "status %q", s)
	}
}
