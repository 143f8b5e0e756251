package editor

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/phambaophuc/watermark-manager/internal/models"
	"github.com/phambaophuc/watermark-manager/internal/services/processor"
	"github.com/phambaophuc/watermark-manager/internal/services/storage"
	"github.com/phambaophuc/watermark-manager/pkg/utils"
	"go.uber.org/zap"
)

var ErrUnknownEdit = errors.New("unknown edit")

// Editor applies one edit per call: check, load, transform, save.
type Editor struct {
	processor *processor.ImageProcessor
	storage   *storage.StorageService
	logger    *zap.Logger
}

func NewEditor(
	processor *processor.ImageProcessor,
	storage *storage.StorageService,
	logger *zap.Logger,
) *Editor {
	return &Editor{
		processor: processor,
		storage:   storage,
		logger:    logger,
	}
}

// Apply runs the edit described by opts and reports how it went. It never
// prints and never exits; the caller decides what happens next.
func (e *Editor) Apply(ctx context.Context, opts *models.SessionOptions) models.EditResult {
	start := time.Now()
	outputName := utils.PrepareOutputFilename(opts.InputImage)

	logger := e.logger.With(
		zap.String("cycle_id", uuid.New().String()),
		zap.String("edit", opts.EditType.String()),
		zap.String("input", opts.InputImage),
	)
	logger.Debug("Applying edit", zap.String("output", outputName))

	result := models.EditResult{
		EditType:  opts.EditType,
		InputPath: e.storage.Path(opts.InputImage),
	}

	outputPath, err := e.apply(ctx, opts, outputName)
	result.Duration = time.Since(start)
	result.Status = classify(err)
	result.Err = err

	if err != nil {
		logger.Warn("Edit failed",
			zap.String("status", string(result.Status)),
			zap.Duration("duration", result.Duration),
			zap.Error(err))
		return result
	}

	result.OutputPath = outputPath
	logger.Info("Edit completed",
		zap.String("output", outputPath),
		zap.Duration("duration", result.Duration))

	return result
}

func (e *Editor) apply(ctx context.Context, opts *models.SessionOptions, outputName string) (string, error) {
	if err := e.checkPreconditions(opts); err != nil {
		return "", err
	}

	img, format, err := e.load(ctx, opts.InputImage)
	if err != nil {
		return "", err
	}

	edited, err := e.transform(ctx, img, opts)
	if err != nil {
		return "", err
	}

	outputFormat := processor.OutputFormat(outputName, format)
	return e.storage.Upload(ctx, outputName, func(w io.Writer) error {
		if err := e.processor.Encode(w, edited, outputFormat); err != nil {
			return fmt.Errorf("failed to encode image: %w", err)
		}
		return nil
	})
}

// checkPreconditions verifies required files exist and numeric values are usable
// before anything is decoded.
func (e *Editor) checkPreconditions(opts *models.SessionOptions) error {
	if !e.storage.Exists(opts.InputImage) {
		return fmt.Errorf("input image %q: %w", opts.InputImage, storage.ErrNotFound)
	}

	switch opts.EditType {
	case models.EditWatermark:
		if opts.WatermarkType == models.WatermarkImage && !e.storage.Exists(opts.WatermarkImage) {
			return fmt.Errorf("watermark image %q: %w", opts.WatermarkImage, storage.ErrNotFound)
		}
	case models.EditBrightness:
		return processor.ValidateAdjustment(opts.BrightnessValue)
	case models.EditContrast:
		return processor.ValidateAdjustment(opts.ContrastValue)
	}

	return nil
}

func (e *Editor) load(ctx context.Context, name string) (image.Image, string, error) {
	data, err := e.storage.Download(ctx, name)
	if err != nil {
		return nil, "", err
	}

	img, format, err := e.processor.Decode(data)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", name, err)
	}

	e.logger.Debug("Image loaded",
		zap.String("name", name),
		zap.String("format", format),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
		zap.Int("bytes", len(data)))
	return img, format, nil
}

func (e *Editor) transform(ctx context.Context, img image.Image, opts *models.SessionOptions) (image.Image, error) {
	switch opts.EditType {
	case models.EditBrightness:
		return e.processor.AdjustBrightness(img, opts.BrightnessValue), nil
	case models.EditContrast:
		return e.processor.AdjustContrast(img, opts.ContrastValue), nil
	case models.EditGreyscale:
		return e.processor.Greyscale(img), nil
	case models.EditInvert:
		return e.processor.Invert(img), nil
	case models.EditWatermark:
		return e.watermark(ctx, img, opts)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownEdit, opts.EditType)
}

func (e *Editor) watermark(ctx context.Context, img image.Image, opts *models.SessionOptions) (image.Image, error) {
	switch opts.WatermarkType {
	case models.WatermarkText:
		return e.processor.AddTextWatermark(img, opts.WatermarkText)
	case models.WatermarkImage:
		mark, _, err := e.load(ctx, opts.WatermarkImage)
		if err != nil {
			return nil, err
		}
		return e.processor.AddImageWatermark(img, mark), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownEdit, opts.WatermarkType)
}

func classify(err error) models.ResultStatus {
	switch {
	case err == nil:
		return models.StatusSuccess
	case errors.Is(err, storage.ErrNotFound):
		return models.StatusNotFound
	case errors.Is(err, processor.ErrNotANumber),
		errors.Is(err, processor.ErrOutOfRange),
		errors.Is(err, ErrUnknownEdit):
		return models.StatusValidationError
	default:
		return models.StatusIOError
	}
}
