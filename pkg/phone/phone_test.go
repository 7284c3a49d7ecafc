package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		region  string
		want    string
		wantErr bool
	}{
		{"us national format", "(212) 555-0100", "US", "+12125550100", false},
		{"already e164", "+12125550100", "US", "+12125550100", false},
		{"uk with prefix", "+44 20 7946 0958", "", "+442079460958", false},
		{"spaces and dashes", "212-555-0100", "US", "+12125550100", false},
		{"too short", "12", "US", "", true},
		{"garbage", "call me maybe", "US", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input, tt.region)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("+12125550100", ""))
	assert.True(t, IsValid("212 555 0100", "US"))
	assert.False(t, IsValid("12", "US"))
	assert.False(t, IsValid("", "US"))
}

func TestRegion(t *testing.T) {
	region, err := Region("+442079460958")
	require.NoError(t, err)
	assert.Equal(t, "GB", region)

	region, err = Region("+12125550100")
	require.NoError(t, err)
	assert.Equal(t, "US", region)
}
