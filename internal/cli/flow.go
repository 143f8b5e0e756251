package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phambaophuc/watermark-manager/internal/config"
	"github.com/phambaophuc/watermark-manager/internal/models"
	"github.com/phambaophuc/watermark-manager/internal/services/processor"
	"github.com/phambaophuc/watermark-manager/internal/services/storage"
)

var ErrDeclined = errors.New("user declined to continue")

const welcomeMessage = `Hi! Welcome to "Watermark manager". Copy your image files to "%s" folder. ` +
	`Then you'll be able to use them in the app. Are you ready?`

// Flow asks the questions for one edit, in a fixed order.
type Flow struct {
	prompter Prompter
	storage  *storage.StorageService
	cfg      config.AppConfig
}

func NewFlow(prompter Prompter, storage *storage.StorageService, cfg config.AppConfig) *Flow {
	return &Flow{
		prompter: prompter,
		storage:  storage,
		cfg:      cfg,
	}
}

// Collect runs one round of prompts. It returns ErrDeclined when the user is
// not ready to continue. File existence is not checked here.
func (f *Flow) Collect() (*models.SessionOptions, error) {
	ready, err := f.prompter.Confirm(fmt.Sprintf(welcomeMessage, f.storage.Root()), true)
	if err != nil {
		return nil, err
	}
	if !ready {
		return nil, ErrDeclined
	}

	input, err := f.prompter.Input(InputQuestion{
		Message: "What file do you want to mark?",
		Default: f.cfg.DefaultInputImage,
		Suggest: f.suggestImages,
	})
	if err != nil {
		return nil, err
	}

	label, err := f.prompter.Select("What do you want to do?", models.EditTypeLabels())
	if err != nil {
		return nil, err
	}
	editType, err := models.ParseEditType(label)
	if err != nil {
		return nil, err
	}

	opts := &models.SessionOptions{
		InputImage: input,
		EditType:   editType,
	}

	switch editType {
	case models.EditWatermark:
		err = f.collectWatermark(opts)
	case models.EditBrightness:
		opts.BrightnessValue, err = f.askAdjustment("brightness")
	case models.EditContrast:
		opts.ContrastValue, err = f.askAdjustment("contrast")
	}
	if err != nil {
		return nil, err
	}

	return opts, nil
}

func (f *Flow) collectWatermark(opts *models.SessionOptions) error {
	label, err := f.prompter.Select("Which watermark do you want to add?", models.WatermarkTypeLabels())
	if err != nil {
		return err
	}
	opts.WatermarkType, err = models.ParseWatermarkType(label)
	if err != nil {
		return err
	}

	if opts.WatermarkType == models.WatermarkText {
		opts.WatermarkText, err = f.prompter.Input(InputQuestion{
			Message: "Type your watermark text:",
		})
		return err
	}

	opts.WatermarkImage, err = f.prompter.Input(InputQuestion{
		Message: "Type your watermark name:",
		Default: f.cfg.DefaultWatermarkImage,
		Suggest: f.suggestImages,
	})
	return err
}

func (f *Flow) askAdjustment(name string) (float64, error) {
	answer, err := f.prompter.Input(InputQuestion{
		Message: fmt.Sprintf("Enter the %s value (max value = 1, min value = -1)", name),
		Validate: func(answer string) error {
			if _, err := processor.ParseAdjustment(answer); err != nil {
				return errors.New("please enter a number")
			}
			return nil
		},
	})
	if err != nil {
		return 0, err
	}
	return processor.ParseAdjustment(answer)
}

func (f *Flow) suggestImages(toComplete string) []string {
	names, err := f.storage.ListImages()
	if err != nil {
		return nil
	}

	var matches []string
	for _, name := range names {
		if strings.HasPrefix(name, toComplete) {
			matches = append(matches, name)
		}
	}
	return matches
}
