package osmesa

import (
	"reflect"
	"testing"

	"github.com/osmesa-go/osmesa/pkg/osmesa/mesa"
)

func TestBuildAttribs(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		v       Version
		want    []int32
	}{
		{
			name: "core profile precedes version", profile: ProfileCore, v: Version{3, 3},
			want: []int32{
				mesa.Profile, mesa.CoreProfile,
				mesa.ContextMajorVersion, 3, mesa.ContextMinorVersion, 3,
				0,
			},
		},
		{
			name: "compat profile", profile: ProfileCompat, v: Version{2, 1},
			want: []int32{
				mesa.Profile, mesa.CompatProfile,
				mesa.ContextMajorVersion, 2, mesa.ContextMinorVersion, 1,
				0,
			},
		},
		{
			name: "no profile still has the version pair", profile: ProfileNone, v: Version{4, 5},
			want: []int32{
				mesa.ContextMajorVersion, 4, mesa.ContextMinorVersion, 5,
				0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildAttribs(tt.profile, tt.v)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildAttribs() = %v, want %v", got, tt.want)
			}
			if got[len(got)-1] != 0 {
				t.Errorf("attribute list is not zero-terminated: %v", got)
			}
		})
	}
}

func TestCheckRobustness(t *testing.T) {
	tests := []struct {
		r  Robustness
		ok bool
	}{
		{NotRobust, true},
		{NoError, true},
		{RobustNoResetNotification, false},
		{TryRobustNoResetNotification, true},
		{RobustLoseContextOnReset, false},
		{TryRobustLoseContextOnReset, true},
	}

	for _, tt := range tests {
		err := checkRobustness(tt.r)
		if tt.ok && err != nil {
			t.Errorf("robustness %v: unexpected %v", tt.r, err)
		}
		if !tt.ok && err != ErrRobustnessNotSupported {
			t.Errorf("robustness %v: got %v, want ErrRobustnessNotSupported", tt.r, err)
		}
	}
}
