package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	deckerrors "github.com/alexisbeaulieu97/deck/pkg/errors"
)

type sample struct {
	ID    string  `yaml:"id" validate:"required,diagram_id"`
	Level string  `yaml:"log_level" validate:"omitempty,oneof=debug info"`
	Items []child `yaml:"items" validate:"dive"`
}

type child struct {
	Name string `yaml:"name" validate:"required"`
}

func TestStructReportsYamlFieldNames(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		input     sample
		wantField string
		wantTag   string
	}{
		{
			name:      "missing id",
			input:     sample{},
			wantField: "id",
			wantTag:   "required",
		},
		{
			name:      "id with uppercase letters",
			input:     sample{ID: "Checkout"},
			wantField: "id",
			wantTag:   "diagram_id",
		},
		{
			name:      "oneof includes parameter",
			input:     sample{ID: "ok", Level: "trace"},
			wantField: "log_level",
			wantTag:   "oneof=debug info",
		},
		{
			name:      "nested slice element",
			input:     sample{ID: "ok", Items: []child{{Name: "a"}, {}}},
			wantField: "items[1].name",
			wantTag:   "required",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := Struct(tc.input)
			require.Error(t, err)

			var vErr *deckerrors.ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Equal(t, tc.wantField, vErr.Field)
			require.Contains(t, vErr.Message, tc.wantTag)
		})
	}
}

func TestStructAcceptsValidInput(t *testing.T) {
	t.Parallel()

	require.NoError(t, Struct(sample{ID: "release-train-2", Level: "info"}))
}

func TestConvertPassesThroughNil(t *testing.T) {
	t.Parallel()

	require.NoError(t, Convert(nil))
}

func TestConvertWrapsForeignErrors(t *testing.T) {
	t.Parallel()

	err := Convert(errors.New("boom"))

	var vErr *deckerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "boom", vErr.Message)
}
