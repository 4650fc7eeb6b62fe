package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// deviceInfo is the part of fyne.Device the layout depends on
type deviceInfo interface {
	IsMobile() bool
	Orientation() fyne.DeviceOrientation
}

// Adaptive arranges form fields for the device the app runs on
type Adaptive struct {
	device deviceInfo
}

// NewAdaptive creates a layout helper for the current device
func NewAdaptive() *Adaptive {
	return &Adaptive{device: fyne.CurrentDevice()}
}

// IsMobileDevice checks if the app is running on a mobile device
func (a *Adaptive) IsMobileDevice() bool {
	return a.device != nil && a.device.IsMobile()
}

// IsLandscape returns true if a mobile device is held horizontally
func (a *Adaptive) IsLandscape() bool {
	if !a.IsMobileDevice() {
		return false
	}
	o := a.device.Orientation()
	return o == fyne.OrientationHorizontalLeft || o == fyne.OrientationHorizontalRight
}

// FieldSpacing returns the gap between fields
func (a *Adaptive) FieldSpacing() float32 {
	if a.IsMobileDevice() {
		return FieldSpacingMobile
	}
	return FieldSpacingDesktop
}

// FormContainer stacks fields with device-dependent gaps. Mobile devices in
// landscape get two columns.
func (a *Adaptive) FormContainer(fields ...fyne.CanvasObject) *fyne.Container {
	if a.IsLandscape() {
		return container.NewAdaptiveGrid(2, fields...)
	}

	objects := make([]fyne.CanvasObject, 0, 2*len(fields))
	for i, field := range fields {
		if i > 0 {
			objects = append(objects, a.spacer())
		}
		objects = append(objects, field)
	}
	return container.NewVBox(objects...)
}

func (a *Adaptive) spacer() fyne.CanvasObject {
	gap := canvas.NewRectangle(color.Transparent)
	gap.SetMinSize(fyne.NewSize(0, a.FieldSpacing()))
	return gap
}
