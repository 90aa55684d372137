package cleanup_test

import (
	"context"
	"errors"
	"testing"

	"github.com/limbo/hydration/pkg/cleanup"
	"github.com/stretchr/testify/assert"
)

func TestCleanUp(t *testing.T) {
	order := make([]string, 0, 3)
	for _, name := range []string{"pool", "failing", "server"} {
		name := name
		cleanup.Register(&cleanup.Job{
			Name: name,
			F: func(context.Context) error {
				order = append(order, name)
				if name == "failing" {
					return errors.New("job error")
				}
				return nil
			},
		})
	}
	cleanup.CleanUp(context.Background())
	assert.Equal(t, []string{"server", "failing", "pool"}, order)

	// jobs run once
	cleanup.CleanUp(context.Background())
	assert.Len(t, order, 3)
}
