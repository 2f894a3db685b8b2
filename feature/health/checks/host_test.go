package checks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestCheckHost(t *testing.T) {
	report := CheckHost(context.Background(), pingFunc(func(context.Context) error { return nil }))
	assert.Equal(t, "online", report.Status)
	assert.Empty(t, report.Error)

	report = CheckHost(context.Background(), pingFunc(func(context.Context) error { return errors.New("refused") }))
	assert.Equal(t, "offline", report.Status)
	assert.Equal(t, "refused", report.Error)
}
