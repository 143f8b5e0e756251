package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/phambaophuc/watermark-manager/internal/models"
	"go.uber.org/zap"
)

var ErrInputMissing = errors.New("required image file is missing")

type Applier interface {
	Apply(ctx context.Context, opts *models.SessionOptions) models.EditResult
}

// Session repeats prompt, edit, report until the user stops or a required
// file is missing.
type Session struct {
	flow   *Flow
	editor Applier
	out    io.Writer
	logger *zap.Logger
}

func NewSession(flow *Flow, editor Applier, out io.Writer, logger *zap.Logger) *Session {
	return &Session{
		flow:   flow,
		editor: editor,
		out:    out,
		logger: logger,
	}
}

func (s *Session) Run(ctx context.Context) error {
	for cycle := 1; ; cycle++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		opts, err := s.flow.Collect()
		if errors.Is(err, ErrDeclined) {
			s.logger.Info("Session ended by user", zap.Int("cycles", cycle-1))
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read answers: %w", err)
		}

		result := s.editor.Apply(ctx, opts)
		fmt.Fprintln(s.out, result.Message())

		if result.Status == models.StatusNotFound {
			return fmt.Errorf("%w: %v", ErrInputMissing, result.Err)
		}
	}
}
