package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/formkit/internal/platform"
)

// LabeledPassword is a masked text field with a Show/Hide toggle and an
// optional external link next to its caption
type LabeledPassword struct {
	widget.BaseWidget
	controlledText

	label        *widget.Label
	link         *widget.Hyperlink
	linkURL      string
	toggle       *widget.Button
	revealed     bool
	localization *Localization

	// openLink opens the link target; replaced in tests
	openLink func(rawURL string) error
	// onLinkError reports failures of openLink
	onLinkError func(error)
}

// NewLabeledPassword creates a masked field showing value
func NewLabeledPassword(label, value string, onChange func(string)) *LabeledPassword {
	entry := widget.NewEntry()
	entry.Password = true

	lp := &LabeledPassword{
		label:        newFieldLabel(label),
		localization: NewLocalization(),
		openLink:     platform.OpenURL,
	}
	lp.attach(entry, value, onChange)

	lp.link = widget.NewHyperlink("", nil)
	lp.link.OnTapped = lp.onLinkTapped
	lp.link.Hide()

	lp.toggle = widget.NewButton(lp.localization.GetText(KeyShow), lp.ToggleReveal)

	lp.ExtendBaseWidget(lp)
	return lp
}

// SetLocalization sets the language of the toggle button
func (lp *LabeledPassword) SetLocalization(loc *Localization) {
	if loc == nil {
		return
	}
	lp.localization = loc
	lp.updateToggleText()
}

// SetLink shows a link to rawURL next to the caption. The URL must be an
// absolute http or https URL.
func (lp *LabeledPassword) SetLink(linkLabel, rawURL string) error {
	u, err := platform.ParseLink(rawURL)
	if err != nil {
		return err
	}

	lp.linkURL = u.String()
	lp.link.SetText(linkLabel)
	lp.link.SetURL(u)
	lp.link.Show()
	return nil
}

// ClearLink hides the link
func (lp *LabeledPassword) ClearLink() {
	lp.linkURL = ""
	lp.link.SetText("")
	lp.link.Hide()
}

// Link returns the link label and target. Both are empty when no link is set.
func (lp *LabeledPassword) Link() (label, rawURL string) {
	if lp.linkURL == "" {
		return "", ""
	}
	return lp.link.Text, lp.linkURL
}

// SetOnLinkError sets the handler for links that fail to open
func (lp *LabeledPassword) SetOnLinkError(fn func(error)) {
	lp.onLinkError = fn
}

// ToggleReveal switches between masked and plain text
func (lp *LabeledPassword) ToggleReveal() {
	lp.revealed = !lp.revealed
	lp.entry.Password = !lp.revealed
	lp.entry.Refresh()
	lp.updateToggleText()
}

// Revealed returns true while the text is shown in plain form
func (lp *LabeledPassword) Revealed() bool {
	return lp.revealed
}

// SetLabel changes the caption
func (lp *LabeledPassword) SetLabel(text string) {
	lp.label.SetText(text + LabelSuffix)
}

// Label returns the caption without the suffix
func (lp *LabeledPassword) Label() string {
	return trimLabel(lp.label.Text)
}

// Entry exposes the underlying entry for focus handling
func (lp *LabeledPassword) Entry() *widget.Entry {
	return lp.entry
}

// CreateRenderer implements fyne.Widget
func (lp *LabeledPassword) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewBorder(nil, nil, lp.label, lp.link)
	toggle := container.NewGridWrap(fyne.NewSize(RevealButtonWidth, lp.toggle.MinSize().Height), lp.toggle)
	body := container.NewBorder(nil, nil, nil, toggle, lp.entry)
	return widget.NewSimpleRenderer(container.NewVBox(header, body))
}

func (lp *LabeledPassword) updateToggleText() {
	if lp.revealed {
		lp.toggle.SetText(lp.localization.GetText(KeyHide))
		return
	}
	lp.toggle.SetText(lp.localization.GetText(KeyShow))
}

func (lp *LabeledPassword) onLinkTapped() {
	if lp.linkURL == "" {
		return
	}
	if err := lp.openLink(lp.linkURL); err != nil {
		log.Printf("Warning: failed to open link %s: %v", lp.linkURL, err)
		if lp.onLinkError != nil {
			lp.onLinkError(err)
		}
	}
}
