package ui

import (
	"bytes"
	"image/color"
	"log"

	cfg "github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/shared/controller"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TuningUI is the in-game inspector: one +/- stepper per tuning field and
// Reset, Save and Export buttons.
type TuningUI struct {
	UI *ebitenui.UI

	// OnChange receives every edited tuning.
	OnChange func(t controller.TuningData)
	OnSave   func(t controller.TuningData) error
	OnExport func(t controller.TuningData) error

	tuning   controller.TuningData
	defaults controller.TuningData

	valueLabels []*widget.Label
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewTuningUI builds the inspector showing tuning. Reset returns to
// defaults.
func NewTuningUI(tuning, defaults controller.TuningData) *TuningUI {
	ui := &TuningUI{
		tuning:   tuning,
		defaults: defaults,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *TuningUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: cfg.Inspector.FontSize}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
}

func (ui *TuningUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Colors.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.Inspector.Padding)),
			widget.RowLayoutOpts.Spacing(cfg.Inspector.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Inspector.PanelWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("CONTROLLER TUNING", &ui.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	panel.AddChild(titleLabel)

	for i, field := range controller.TuningFields() {
		panel.AddChild(ui.buildFieldRow(i, field))
	}

	panel.AddChild(ui.buildButtons())

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	panel.AddChild(ui.statusLabel)

	rootContainer.AddChild(panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *TuningUI) buildFieldRow(index int, field controller.TuningField) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	nameLabel := widget.NewLabel(
		widget.LabelOpts.Text(field.Label, &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	row.AddChild(fixedWidth(140, nameLabel))

	row.AddChild(ui.stepButton("-", func() { ui.nudge(index, -1) }))

	valueLabel := widget.NewLabel(
		widget.LabelOpts.Text(field.Format(ui.tuning), &ui.normalFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	ui.valueLabels = append(ui.valueLabels, valueLabel)
	row.AddChild(fixedWidth(60, valueLabel))

	row.AddChild(ui.stepButton("+", func() { ui.nudge(index, 1) }))

	return row
}

// fixedWidth wraps child so that every row lines up.
func fixedWidth(width int, child widget.PreferredSizeLocateableWidget) *widget.Container {
	c := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, cfg.Inspector.RowHeight)),
	)
	c.AddChild(child)
	return c
}

func (ui *TuningUI) stepButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(cfg.Inspector.ButtonWidth, cfg.Inspector.RowHeight-4)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(cfg.Colors.ButtonIdle),
			Hover:   image.NewNineSliceColor(cfg.Colors.ButtonHover),
			Pressed: image.NewNineSliceColor(cfg.Colors.ButtonActive),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   cfg.White,
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *TuningUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	actions := []struct {
		label   string
		onClick func()
	}{
		{"Reset", ui.reset},
		{"Save", func() { ui.run(ui.OnSave, "Saved") }},
		{"Export", func() { ui.run(ui.OnExport, "Copied YAML to clipboard") }},
	}

	for _, action := range actions {
		onClick := action.onClick
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
			widget.ButtonOpts.Image(&widget.ButtonImage{
				Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
				Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
				Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
			}),
			widget.ButtonOpts.Text(action.label, &ui.normalFace, &widget.ButtonTextColor{
				Idle:    cfg.White,
				Hover:   color.RGBA{200, 255, 200, 255},
				Pressed: color.RGBA{150, 200, 150, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
		container.AddChild(btn)
	}

	return container
}

func (ui *TuningUI) run(action func(controller.TuningData) error, done string) {
	if action == nil {
		return
	}
	if err := action(ui.tuning); err != nil {
		ui.SetStatus(err.Error())
		return
	}
	ui.SetStatus(done)
}

func (ui *TuningUI) nudge(index, steps int) {
	field := controller.TuningFields()[index]
	next := field.Nudge(ui.tuning, steps)
	if err := next.Validate(); err != nil {
		ui.SetStatus(err.Error())
		return
	}
	ui.apply(next)
}

func (ui *TuningUI) reset() {
	ui.apply(ui.defaults)
	ui.SetStatus("Reset to defaults")
}

func (ui *TuningUI) apply(t controller.TuningData) {
	ui.SetTuning(t)
	if ui.OnChange != nil {
		ui.OnChange(t)
	}
}

// SetTuning refreshes the displayed values without firing OnChange.
func (ui *TuningUI) SetTuning(t controller.TuningData) {
	ui.tuning = t
	for i, field := range controller.TuningFields() {
		ui.valueLabels[i].Label = field.Format(t)
	}
}

// Tuning returns the values currently shown.
func (ui *TuningUI) Tuning() controller.TuningData {
	return ui.tuning
}

func (ui *TuningUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *TuningUI) Update() {
	ui.UI.Update()
}

func (ui *TuningUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
