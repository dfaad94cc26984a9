package version

import "testing"

func TestBackendVersion(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"descent", Descent},
		{"participle", Participle},
		{"unknown", Tool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BackendVersion(tt.name); got != tt.want {
				t.Errorf("BackendVersion(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
