package models

import "fmt"

type EditType int

const (
	EditBrightness EditType = iota
	EditContrast
	EditGreyscale
	EditInvert
	EditWatermark
)

var editTypeLabels = map[EditType]string{
	EditBrightness: "Change brightness",
	EditContrast:   "Increase contrast",
	EditGreyscale:  "Make image B&W",
	EditInvert:     "Invert image",
	EditWatermark:  "Add watermark",
}

// EditTypes lists the edits in the order the menu shows them.
var EditTypes = []EditType{EditBrightness, EditContrast, EditGreyscale, EditInvert, EditWatermark}

func (t EditType) String() string {
	if label, ok := editTypeLabels[t]; ok {
		return label
	}
	return fmt.Sprintf("EditType(%d)", int(t))
}

func ParseEditType(label string) (EditType, error) {
	for t, l := range editTypeLabels {
		if l == label {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown edit type %q", label)
}

func EditTypeLabels() []string {
	labels := make([]string, len(EditTypes))
	for i, t := range EditTypes {
		labels[i] = t.String()
	}
	return labels
}

// SessionOptions holds the answers collected during one interaction cycle.
type SessionOptions struct {
	InputImage string
	EditType   EditType

	WatermarkType  WatermarkType
	WatermarkText  string
	WatermarkImage string

	BrightnessValue float64
	ContrastValue   float64
}
