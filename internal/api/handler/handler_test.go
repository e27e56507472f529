package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUintParam(t *testing.T) {
	tests := []struct {
		name    string
		param   string
		want    uint
		wantErr bool
	}{
		{name: "valid", param: "42", want: 42},
		{name: "zero", param: "0", want: 0},
		{name: "negative", param: "-1", wantErr: true},
		{name: "not a number", param: "abc", wantErr: true},
		{name: "empty", param: "", wantErr: true},
		{name: "overflow", param: "99999999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseUintParam(tt.param)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
