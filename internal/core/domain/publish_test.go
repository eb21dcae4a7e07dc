package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gavel/internal/core/domain"
)

func TestPublishRequest_Dirs(t *testing.T) {
	req := domain.PublishRequest{
		Location: domain.MustParseLocation("com/example/lib/1.0/lib-1.0.pom"),
	}

	assert.Equal(t, "com/example/lib/1.0", req.TargetDir().String())
	assert.Equal(t, "com/example/lib", req.IndexDir().String())
}
