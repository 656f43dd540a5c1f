package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{
		NameAdaptiveThreshold,
		NameGlobalThreshold,
		NameGrayscale,
		NameLowPass,
		NameOtsuThreshold,
	}, Names())

	for _, name := range Names() {
		alg, ok := Get(name)
		require.True(t, ok)
		assert.NotEmpty(t, alg.GetName())
		assert.NotEmpty(t, alg.GetDescription())
		assert.NoError(t, alg.Validate(alg.GetDefaultParams()), name)
		assert.Len(t, alg.GetParameterInfo(), len(alg.GetDefaultParams()), name)
	}

	assert.False(t, IsValidAlgorithm("otsu"))
	_, err := Apply("otsu", nil, nil)
	assert.Error(t, err)
	assert.Error(t, ValidateParameters("otsu", nil))
}

func TestApplyByName(t *testing.T) {
	rgb := randomBuffer(t, 1, 16, 12, 3)

	out, err := Apply(NameLowPass, rgb, nil)
	require.NoError(t, err)
	want, err := ApplyLowPass(rgb)
	require.NoError(t, err)
	assert.True(t, want.Equal(out))

	out, err = Apply(NameLowPass, rgb, map[string]interface{}{"kernel_size": 3.0})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Channels())

	out, err = Apply(NameGrayscale, rgb, nil)
	require.NoError(t, err)
	assert.True(t, rgb.ToGrayscale().Equal(out))

	// Threshold algorithms grayscale-convert colour input first
	out, err = Apply(NameGlobalThreshold, rgb, map[string]interface{}{"threshold": 127})
	require.NoError(t, err)
	want, err = GlobalThreshold(rgb.ToGrayscale(), 127)
	require.NoError(t, err)
	assert.True(t, want.Equal(out))

	out, err = Apply(NameAdaptiveThreshold, rgb, map[string]interface{}{"block_size": 5.0, "C": 3.0, "method": "mean"})
	require.NoError(t, err)
	want, err = AdaptiveThresholdWith(rgb.ToGrayscale(), AdaptiveParams{Window: 5, Offset: 3, Method: MethodMean})
	require.NoError(t, err)
	assert.True(t, want.Equal(out))
}

func TestValidateParameters(t *testing.T) {
	tests := []struct {
		name    string
		alg     string
		params  map[string]interface{}
		wantErr bool
	}{
		{"low pass even", NameLowPass, map[string]interface{}{"kernel_size": 4.0}, true},
		{"low pass too big", NameLowPass, map[string]interface{}{"kernel_size": 33.0}, true},
		{"low pass string", NameLowPass, map[string]interface{}{"kernel_size": "5"}, true},
		{"global negative", NameGlobalThreshold, map[string]interface{}{"threshold": -1.0}, true},
		{"global 255", NameGlobalThreshold, map[string]interface{}{"threshold": 255.0}, false},
		{"adaptive even", NameAdaptiveThreshold, map[string]interface{}{"block_size": 10.0}, true},
		{"adaptive negative C", NameAdaptiveThreshold, map[string]interface{}{"C": -4.0}, false},
		{"adaptive method", NameAdaptiveThreshold, map[string]interface{}{"method": "median"}, true},
		{"grayscale params", NameGrayscale, map[string]interface{}{"x": 1.0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateParameters(tt.alg, tt.params)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
