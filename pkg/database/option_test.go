package database

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/notion-extensions/pkg/props"
)

func TestNewOption(t *testing.T) {
	tests := []struct {
		name    string
		option  string
		color   props.Color
		wantErr string
	}{
		{name: "plain color", option: "Todo", color: props.ColorGray},
		{name: "empty color", option: "Todo"},
		{name: "background color", option: "Todo", color: props.ColorRedBackground, wantErr: "must be a valid option color"},
		{name: "unknown color", option: "Todo", color: "teal", wantErr: "must be a valid option color"},
		{name: "missing name", color: props.ColorRed, wantErr: "Name: cannot be blank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := NewOption(tt.option, tt.color)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, props.ErrInvalidValue))
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.option, o.Name)
		})
	}

	assert.Panics(t, func() { MustOption("", props.ColorRed) })
}

func TestOption_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(MustOption("Done", props.ColorGreen))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Done","color":"green"}`, string(data))

	data, err = json.Marshal(Option{Name: "Later"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Later","color":"default"}`, string(data))
}
