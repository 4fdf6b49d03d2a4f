package config

import (
	"os"
	"testing"

	"github.com/osmesa-go/osmesa/pkg/osmesa"
)

func TestConfigEnv(t *testing.T) {
	var out Config

	_ = os.Setenv("OSMESA_CONTEXT_MAJOR", "4")
	_ = os.Setenv("OSMESA_BUFFER_W", "128")
	defer func() { _ = os.Unsetenv("OSMESA_CONTEXT_MAJOR") }()
	defer func() { _ = os.Unsetenv("OSMESA_BUFFER_W") }()

	if err := LoadConfig(&out, ""); err != nil {
		t.Fatal(err)
	}

	if out.Context.Major != 4 {
		t.Errorf("major is %v, want the env override 4", out.Context.Major)
	}
	if out.Buffer.W != 128 {
		t.Errorf("width is %v, want the env override 128", out.Buffer.W)
	}
	if out.Context.Minor != 3 {
		t.Errorf("minor is %v, want the default 3", out.Context.Minor)
	}
	if out.Context.Profile != "core" {
		t.Errorf("profile is %v, want the default core", out.Context.Profile)
	}
}

func TestGlProfile(t *testing.T) {
	tests := []struct {
		in      string
		want    osmesa.Profile
		wantErr bool
	}{
		{in: "", want: osmesa.ProfileNone},
		{in: "none", want: osmesa.ProfileNone},
		{in: "core", want: osmesa.ProfileCore},
		{in: "compat", want: osmesa.ProfileCompat},
		{in: "compatibility", want: osmesa.ProfileCompat},
		{in: "es", wantErr: true},
	}

	for _, tt := range tests {
		var c Config
		c.Context.Profile = tt.in
		got, err := c.GlProfile()
		if tt.wantErr != (err != nil) {
			t.Errorf("profile %q: err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("profile %q: got %v, want %v", tt.in, got, tt.want)
		}
	}
}
