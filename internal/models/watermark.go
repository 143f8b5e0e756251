package models

import "fmt"

type WatermarkType int

const (
	WatermarkText WatermarkType = iota
	WatermarkImage
)

var watermarkTypeLabels = map[WatermarkType]string{
	WatermarkText:  "Text watermark",
	WatermarkImage: "Image watermark",
}

// WatermarkTypes lists the watermark kinds in prompt order.
var WatermarkTypes = []WatermarkType{WatermarkText, WatermarkImage}

func (t WatermarkType) String() string {
	if label, ok := watermarkTypeLabels[t]; ok {
		return label
	}
	return fmt.Sprintf("WatermarkType(%d)", int(t))
}

func ParseWatermarkType(label string) (WatermarkType, error) {
	for t, l := range watermarkTypeLabels {
		if l == label {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown watermark type %q", label)
}

func WatermarkTypeLabels() []string {
	labels := make([]string, len(WatermarkTypes))
	for i, t := range WatermarkTypes {
		labels[i] = t.String()
	}
	return labels
}
