package cli

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/phambaophuc/watermark-manager/internal/services/processor"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"interrupt", terminal.InterruptErr, ErrDeclined},
		{"wrapped interrupt", fmt.Errorf("ask: %w", terminal.InterruptErr), ErrDeclined},
		{"other", io.EOF, io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestStringValidator(t *testing.T) {
	var seen []string
	validate := stringValidator(func(answer string) error {
		seen = append(seen, answer)
		_, err := processor.ParseAdjustment(answer)
		return err
	})

	assert.NoError(t, validate("0.5"))
	assert.True(t, errors.Is(validate("bright"), processor.ErrNotANumber))
	assert.Error(t, validate(42), "non-string answers are checked as empty")
	assert.Equal(t, []string{"0.5", "bright", ""}, seen)
}
