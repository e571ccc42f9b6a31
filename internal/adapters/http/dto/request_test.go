package dto_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/go-actuator/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-actuator/internal/domain"
)

func TestParseRefreshRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   string
		wantWait bool
		wantErr  bool
	}{
		{"no query", "/actuator/refresh", false, false},
		{"wait true", "/actuator/refresh?wait=true", true, false},
		{"wait 1", "/actuator/refresh?wait=1", true, false},
		{"wait false", "/actuator/refresh?wait=false", false, false},
		{"wait garbage", "/actuator/refresh?wait=soon", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodPost, tt.target, nil)

			got, err := dto.ParseRefreshRequest(r)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRefreshRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
			if got.Wait != tt.wantWait {
				t.Errorf("Wait = %v, want %v", got.Wait, tt.wantWait)
			}
		})
	}
}
