package models

import "time"

type ResultStatus string

const (
	StatusSuccess         ResultStatus = "success"
	StatusValidationError ResultStatus = "validation_error"
	StatusNotFound        ResultStatus = "not_found"
	StatusIOError         ResultStatus = "io_error"
)

const FailureMessage = "Something went wrong... Try again"

// EditResult is the outcome of applying one edit.
type EditResult struct {
	Status     ResultStatus
	EditType   EditType
	InputPath  string
	OutputPath string
	Duration   time.Duration
	Err        error
}

func (r EditResult) OK() bool {
	return r.Status == StatusSuccess
}

// Message returns the text shown to the user for this result.
func (r EditResult) Message() string {
	switch r.Status {
	case StatusSuccess:
		return successMessages[r.EditType]
	case StatusValidationError:
		switch r.EditType {
		case EditBrightness:
			return "Invalid brightness value. Please enter a valid number."
		case EditContrast:
			return "Invalid contrast value. Please enter a valid number."
		}
	}
	return FailureMessage
}

var successMessages = map[EditType]string{
	EditWatermark:  "Watermark added correctly",
	EditBrightness: "Brightness changed successfully",
	EditContrast:   "Contrast changed successfully",
	EditGreyscale:  "Colours removed successfully",
	EditInvert:     "Colours inverted successfully",
}
