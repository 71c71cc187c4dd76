//go:build !ebiten

package window

import (
	"context"
	"strings"
	"testing"

	"simwall/internal/app"
	"simwall/internal/config"
)

func TestStubNamesBuildTag(t *testing.T) {
	cfg := config.Default()
	cfg.Renderer = Name
	err := app.Run(context.Background(), cfg)
	if err == nil || !strings.Contains(err.Error(), "ebiten") {
		t.Fatalf("err=%v, want a message naming the ebiten tag", err)
	}
}
