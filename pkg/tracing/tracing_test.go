package tracing

import (
	"context"
	"testing"

	"futsal-booking/backend/config"
)

func TestInit_Disabled(t *testing.T) {
	shutdown, err := Init(context.Background(), &config.TracingConfig{Enabled: false})
	if err != nil {
		t.Fatalf("未启用时不应报错: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("空 shutdown 不应报错: %v", err)
	}
}
