package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct{ A int }

type sampleConf struct {
	A int     `json:"a"`
	B float64 `json:"b"`
	C struct {
		D float64 `json:"d"`
	} `json:"c"`
}

func TestRegistry_Create(t *testing.T) {
	reg := NewRegistry[*sample]()
	require.NoError(t, reg.Register("s", func(conf map[string]any) (*sample, error) {
		var c sampleConf
		if err := Decode(conf, &c); err != nil {
			return nil, err
		}
		return &sample{A: c.A}, nil
	}))
	inst, err := reg.Create(ModuleConfig{Type: "s", Conf: map[string]any{"a": 3}})
	require.NoError(t, err)
	assert.Equal(t, 3, inst.A)
	assert.Equal(t, []string{"s"}, reg.Names())
}

func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry[int]()
	require.NoError(t, reg.Register("x", func(map[string]any) (int, error) { return 1, nil }))
	assert.Error(t, reg.Register("x", func(map[string]any) (int, error) { return 2, nil }))
	assert.Error(t, reg.Register("y", nil))
	_, err := reg.Create(ModuleConfig{Type: "y"})
	assert.Error(t, err)
}

func TestDecodeReport_KeepsExistingAndReportsUnused(t *testing.T) {
	c := sampleConf{A: 7, B: 1.5}
	c.C.D = 0.25
	unused, err := DecodeReport(map[string]any{
		"b":     "2.5",
		"extra": true,
		"c":     map[string]any{"d": 0.75, "zz": 1},
	}, &c)
	require.NoError(t, err)
	assert.Equal(t, 7, c.A)
	assert.Equal(t, 2.5, c.B)
	assert.Equal(t, 0.75, c.C.D)
	assert.Equal(t, []string{"c.zz", "extra"}, unused)
}

func TestDecodeReport_Integers(t *testing.T) {
	cases := []struct {
		name    string
		in      any
		want    int
		wantErr bool
	}{
		{"int", 4, 4, false},
		{"whole float", 4.0, 4, false},
		{"string", "12", 12, false},
		{"fraction", 1.5, 0, true},
		{"bad string", "1.5", 0, true},
		{"bool", true, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var c sampleConf
			_, err := DecodeReport(map[string]any{"a": tc.in}, &c)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.A)
		})
	}
}
