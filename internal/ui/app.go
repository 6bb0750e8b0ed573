package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/piwi3910/GardenPlot/internal/engine"
	"github.com/piwi3910/GardenPlot/internal/export"
	plantimporter "github.com/piwi3910/GardenPlot/internal/importer"
	"github.com/piwi3910/GardenPlot/internal/model"
	"github.com/piwi3910/GardenPlot/internal/project"
	"github.com/piwi3910/GardenPlot/internal/ui/widgets"
)

// Placement modes for the layout tab.
const (
	modePlant     = "Plant"
	modeStructure = "Structure"
	modePath      = "Path"
	modeRemove    = "Remove"
)

// App holds all application state and UI references.
type App struct {
	window  fyne.Window
	log     *zap.Logger
	config  model.AppConfig
	catalog model.Catalog
	store   *model.PlacementStore
	tabs    *container.AppTabs

	mode            string
	selectedPlant   string
	selectedStruct  string
	pathMaterial    string
	pathWidthCells  int
	pathLengthCells int

	// UI references for dynamic updates
	plotCanvas        *widgets.GardenCanvas
	statusLabel       *widget.Label
	undoBtn           *widget.Button
	redoBtn           *widget.Button
	catalogContainer  *fyne.Container
	analysisContainer *fyne.Container
}

func NewApp(window fyne.Window, log *zap.Logger) (*App, error) {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		log.Warn("config load failed, using defaults", zap.Error(err))
		config = model.DefaultAppConfig()
	}

	catalog, _, err := project.LoadOrCreateCatalog()
	if err != nil {
		log.Warn("catalog load failed, using built-in catalog", zap.Error(err))
		catalog = model.MustDefaultCatalog()
	}

	settings := model.DefaultSettings()
	config.ApplyToSettings(&settings)

	a := &App{
		window:          window,
		log:             log,
		config:          config,
		catalog:         catalog,
		mode:            modePlant,
		pathMaterial:    "gravel",
		pathWidthCells:  1,
		pathLengthCells: 3,
	}
	a.store, err = model.NewPlacementStore(settings, &a.catalog, log)
	if err != nil {
		return nil, err
	}
	if names := a.catalog.PlantNames(); len(names) > 0 {
		a.selectedPlant = names[0]
	}
	if names := a.catalog.StructureNames(); len(names) > 0 {
		a.selectedStruct = names[0]
	}
	return a, nil
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Plan...", func() {
			a.showNewPlanDialog()
		}),
		fyne.NewMenuItem("Open Plan...", func() {
			a.openPlan()
		}),
		fyne.NewMenuItem("Export Plan...", func() {
			a.exportPlanJSON()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF...", func() {
			a.exportPDF()
		}),
		fyne.NewMenuItem("Export Plant Labels...", func() {
			a.exportLabels()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Plants from CSV...", func() {
			a.importCSV()
		}),
		fyne.NewMenuItem("Import Plants from Excel...", func() {
			a.importExcel()
		}),
		fyne.NewMenuItem("Import Site Plan from DXF...", func() {
			a.importDXF()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() {
			a.undo()
		}),
		fyne.NewMenuItem("Redo", func() {
			a.redo()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear All Plants", func() {
			for _, p := range a.store.Plants() {
				a.store.RemovePlant(p.ID)
			}
			a.refreshCanvas()
		}),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Analyze Compatibility", func() {
			a.refreshAnalysis()
			a.tabs.SelectIndex(2) // Switch to Analysis tab
		}),
		fyne.NewMenuItem("Suggest Placement...", func() {
			a.showSuggestDialog()
		}),
		fyne.NewMenuItem("Check Catalog Relations", func() {
			a.showCatalogAudit()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About GardenPlot",
		"GardenPlot — Garden Layout Planner\n\n"+
			"A cross-platform desktop application for planning\n"+
			"garden beds with companion-planting analysis.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	layoutTab := container.NewTabItem("Layout", a.buildLayoutPanel())
	catalogTab := container.NewTabItem("Catalog", a.buildCatalogPanel())
	analysisTab := container.NewTabItem("Analysis", a.buildAnalysisPanel())

	a.tabs = container.NewAppTabs(layoutTab, catalogTab, analysisTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	return a.tabs
}

// ─── Layout Panel ──────────────────────────────────────────

func (a *App) buildLayoutPanel() fyne.CanvasObject {
	a.plotCanvas = widgets.NewGardenCanvas(a.store.Settings(), &a.catalog, 700, 500)
	a.plotCanvas.OnCellTapped = a.handleCellTap

	a.statusLabel = widget.NewLabel("Tap a cell to place the selected plant.")

	modeRadio := widget.NewRadioGroup(
		[]string{modePlant, modeStructure, modePath, modeRemove},
		func(selected string) {
			a.mode = selected
		},
	)
	modeRadio.SetSelected(modePlant)
	modeRadio.Horizontal = true

	plantSelect := widget.NewSelect(a.catalog.PlantNames(), func(name string) {
		a.selectedPlant = name
	})
	plantSelect.SetSelected(a.selectedPlant)

	structSelect := widget.NewSelect(a.catalog.StructureNames(), func(name string) {
		a.selectedStruct = name
	})
	if a.selectedStruct != "" {
		structSelect.SetSelected(a.selectedStruct)
	}

	materialSelect := widget.NewSelect([]string{"gravel", "stone", "mulch", "brick"}, func(m string) {
		a.pathMaterial = m
	})
	materialSelect.SetSelected("gravel")

	a.undoBtn = widget.NewButtonWithIcon("Undo", theme.ContentUndoIcon(), func() {
		a.undo()
	})
	a.redoBtn = widget.NewButtonWithIcon("Redo", theme.ContentRedoIcon(), func() {
		a.redo()
	})
	a.updateHistoryButtons()

	sidebar := container.NewVBox(
		widget.NewLabelWithStyle("Placement Mode", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		modeRadio,
		widget.NewSeparator(),
		widget.NewLabel("Plant"),
		plantSelect,
		widget.NewLabel("Structure"),
		structSelect,
		widget.NewLabel("Path Material"),
		materialSelect,
		widget.NewSeparator(),
		container.NewHBox(a.undoBtn, a.redoBtn),
	)

	return container.NewBorder(
		nil,
		a.statusLabel,
		sidebar, nil,
		container.NewScroll(a.plotCanvas),
	)
}

// handleCellTap dispatches a tap on the plot to the current placement mode.
func (a *App) handleCellTap(x, y int) {
	switch a.mode {
	case modePlant:
		a.placePlantAt(x, y)
	case modeStructure:
		a.placeStructureAt(x, y)
	case modePath:
		a.placePathAt(x, y)
	case modeRemove:
		a.removeAt(x, y)
	}
	a.refreshCanvas()
}

func (a *App) placePlantAt(x, y int) {
	def := a.catalog.FindPlantByName(a.selectedPlant)
	if def == nil {
		a.statusLabel.SetText("Select a plant first.")
		return
	}
	placed, err := a.store.PlacePlant(def.ID, x, y)
	if err != nil {
		a.statusLabel.SetText(fmt.Sprintf("Cannot place %s: %v", def.Name, err))
		return
	}
	a.statusLabel.SetText(fmt.Sprintf("Placed %s at (%d, %d)", def.Name, placed.X, placed.Y))
}

func (a *App) placeStructureAt(x, y int) {
	var def *model.StructureDefinition
	for i := range a.catalog.Structures {
		if a.catalog.Structures[i].Name == a.selectedStruct {
			def = &a.catalog.Structures[i]
			break
		}
	}
	if def == nil {
		a.statusLabel.SetText("Select a structure first.")
		return
	}
	if _, err := a.store.AddStructure(def.ID, x, y); err != nil {
		a.statusLabel.SetText(fmt.Sprintf("Cannot place %s: %v", def.Name, err))
		return
	}
	a.statusLabel.SetText(fmt.Sprintf("Placed %s at (%d, %d)", def.Name, x, y))
}

func (a *App) placePathAt(x, y int) {
	if _, err := a.store.AddPath(x, y, a.pathWidthCells, a.pathLengthCells, a.pathMaterial); err != nil {
		a.statusLabel.SetText(fmt.Sprintf("Cannot place path: %v", err))
		return
	}
	a.statusLabel.SetText(fmt.Sprintf("Placed %s path at (%d, %d)", a.pathMaterial, x, y))
}

func (a *App) removeAt(x, y int) {
	if p := a.store.PlantAt(x, y); p != nil {
		a.store.RemovePlant(p.ID)
		a.statusLabel.SetText(fmt.Sprintf("Removed plant at (%d, %d)", x, y))
		return
	}
	if st := a.store.StructureAt(x, y); st != nil {
		name := st.TypeID
		if def := a.catalog.FindStructure(st.TypeID); def != nil {
			name = def.Name
		}
		a.store.RemoveStructure(st.ID)
		a.statusLabel.SetText(fmt.Sprintf("Removed %s at (%d, %d)", name, x, y))
		return
	}
	if seg := a.store.PathAt(x, y); seg != nil {
		a.store.RemovePath(seg.ID)
		a.statusLabel.SetText(fmt.Sprintf("Removed path at (%d, %d)", x, y))
		return
	}
	a.statusLabel.SetText(fmt.Sprintf("Nothing to remove at (%d, %d)", x, y))
}

func (a *App) undo() {
	if a.store.Undo() {
		a.statusLabel.SetText("Undid last change.")
	}
	a.refreshCanvas()
}

func (a *App) redo() {
	if a.store.Redo() {
		a.statusLabel.SetText("Redid last change.")
	}
	a.refreshCanvas()
}

func (a *App) refreshCanvas() {
	a.plotCanvas.SetState(a.store.Plants(), a.store.Structures(), a.store.Paths())
	a.updateHistoryButtons()
}

func (a *App) updateHistoryButtons() {
	if a.store.CanUndo() {
		a.undoBtn.Enable()
	} else {
		a.undoBtn.Disable()
	}
	if a.store.CanRedo() {
		a.redoBtn.Enable()
	} else {
		a.redoBtn.Disable()
	}
}

// ─── Catalog Panel ─────────────────────────────────────────

func (a *App) buildCatalogPanel() fyne.CanvasObject {
	a.catalogContainer = container.NewVBox()

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search plants by name, or filter with tag:herb...")
	searchEntry.OnChanged = func(term string) {
		a.refreshCatalogList(term)
	}
	a.refreshCatalogList("")

	return container.NewBorder(
		container.NewBorder(nil, nil,
			widget.NewLabelWithStyle("Plant Catalog", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			nil,
			searchEntry,
		),
		nil, nil, nil,
		container.NewVScroll(a.catalogContainer),
	)
}

// splitSearchTerm separates "tag:" tokens from the free-text part of a
// catalog search query.
func splitSearchTerm(term string) (text string, tags []string) {
	var words []string
	for _, tok := range strings.Fields(term) {
		if tag, ok := strings.CutPrefix(tok, "tag:"); ok && tag != "" {
			tags = append(tags, tag)
			continue
		}
		words = append(words, tok)
	}
	return strings.Join(words, " "), tags
}

func (a *App) refreshCatalogList(term string) {
	a.catalogContainer.RemoveAll()

	text, tags := splitSearchTerm(term)
	matches := a.catalog.Search(text, tags)
	if len(matches) == 0 {
		a.catalogContainer.Add(widget.NewLabel("No plants match."))
		a.catalogContainer.Refresh()
		return
	}

	header := container.NewGridWithColumns(6,
		widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Category", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Spacing (m)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Water", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Sun", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Companions", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
	a.catalogContainer.Add(header)
	a.catalogContainer.Add(widget.NewSeparator())

	for _, p := range matches {
		row := container.NewGridWithColumns(6,
			widget.NewLabel(p.Name),
			widget.NewLabel(p.Category),
			widget.NewLabel(fmt.Sprintf("%.2f", p.Spacing)),
			widget.NewLabel(string(p.Water)),
			widget.NewLabel(string(p.Sun)),
			widget.NewLabel(strings.Join(p.Companions, ", ")),
		)
		a.catalogContainer.Add(row)
	}
	a.catalogContainer.Refresh()
}

// ─── Analysis Panel ────────────────────────────────────────

func (a *App) buildAnalysisPanel() fyne.CanvasObject {
	a.analysisContainer = container.NewVBox(
		widget.NewLabel("Place some plants, then run Tools > Analyze Compatibility."),
	)

	analyzeBtn := widget.NewButtonWithIcon("Analyze", theme.SearchIcon(), func() {
		a.refreshAnalysis()
	})

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Companion Analysis", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			analyzeBtn,
		),
		nil, nil, nil,
		container.NewVScroll(a.analysisContainer),
	)
}

func (a *App) refreshAnalysis() {
	a.analysisContainer.RemoveAll()

	report := a.store.Analyze()
	summary := model.Summarize(a.store.Grid(), a.store.Plants(), a.store.Structures(), a.store.Paths(), &a.catalog)

	stats := widget.NewLabel(fmt.Sprintf(
		"%d plants, %d structures, %d paths — %.1f%% of %d cells planted",
		summary.PlantCount, summary.StructureCount, summary.PathCount,
		summary.CoveragePercent, summary.TotalCells,
	))
	stats.TextStyle = fyne.TextStyle{Bold: true}
	a.analysisContainer.Add(stats)
	a.analysisContainer.Add(widget.NewSeparator())

	if len(report.Conflicts) == 0 && len(report.Benefits) == 0 {
		a.analysisContainer.Add(widget.NewLabel("No adjacent companion or conflict pairs found."))
	}

	if len(report.Conflicts) > 0 {
		conflictHeader := widget.NewLabel(fmt.Sprintf("Conflicts (%d):", len(report.Conflicts)))
		conflictHeader.Importance = widget.DangerImportance
		a.analysisContainer.Add(conflictHeader)
		for _, c := range report.Conflicts {
			a.analysisContainer.Add(widget.NewLabel("  " + c.Reason))
		}
	}

	if len(report.Benefits) > 0 {
		benefitHeader := widget.NewLabel(fmt.Sprintf("Benefits (%d):", len(report.Benefits)))
		benefitHeader.Importance = widget.SuccessImportance
		a.analysisContainer.Add(benefitHeader)
		for _, b := range report.Benefits {
			a.analysisContainer.Add(widget.NewLabel("  " + b.Reason))
		}
	}

	overlaps := model.OverlapWarnings(a.store.Plants(), a.store.Structures(), a.store.Paths(), &a.catalog)
	if len(overlaps) > 0 {
		a.analysisContainer.Add(widget.NewSeparator())
		overlapHeader := widget.NewLabel(fmt.Sprintf("Overlap warnings (%d):", len(overlaps)))
		overlapHeader.Importance = widget.WarningImportance
		a.analysisContainer.Add(overlapHeader)
		for _, line := range model.FormatOverlapWarnings(overlaps) {
			a.analysisContainer.Add(widget.NewLabel("  " + line))
		}
	}

	a.analysisContainer.Refresh()
}

// ─── Dialogs ───────────────────────────────────────────────

func (a *App) showNewPlanDialog() {
	settings := a.store.Settings()

	nameEntry := widget.NewEntry()
	nameEntry.SetText(settings.Name)

	widthEntry := widget.NewEntry()
	widthEntry.SetText(fmt.Sprintf("%.1f", settings.Width))

	lengthEntry := widget.NewEntry()
	lengthEntry.SetText(fmt.Sprintf("%.1f", settings.Length))

	gridEntry := widget.NewEntry()
	gridEntry.SetText(fmt.Sprintf("%.2f", settings.GridSize))

	form := dialog.NewForm("New Plan", "Create", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Width (m)", widthEntry),
			widget.NewFormItem("Length (m)", lengthEntry),
			widget.NewFormItem("Grid size (m)", gridEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			w, _ := strconv.ParseFloat(widthEntry.Text, 64)
			l, _ := strconv.ParseFloat(lengthEntry.Text, 64)
			g, _ := strconv.ParseFloat(gridEntry.Text, 64)

			next := model.GardenSettings{
				Name:     nameEntry.Text,
				Width:    w,
				Length:   l,
				GridSize: g,
			}
			if err := next.Validate(); err != nil {
				dialog.ShowError(err, a.window)
				return
			}

			store, err := model.NewPlacementStore(next, &a.catalog, a.log)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.store = store
			a.plotCanvas.SetSettings(next)
			a.refreshCanvas()
			a.statusLabel.SetText(fmt.Sprintf("Created plan %q (%.1fm × %.1fm)", next.Name, w, l))
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 300))
	form.Show()
}

func (a *App) showSuggestDialog() {
	def := a.catalog.FindPlantByName(a.selectedPlant)
	if def == nil {
		dialog.ShowInformation("No plant selected", "Pick a plant on the Layout tab first.", a.window)
		return
	}

	suggestions := engine.Suggest(def.ID, a.store.Plants(), a.store.Grid(), &a.catalog, 5)
	if len(suggestions) == 0 {
		dialog.ShowInformation("No suggestions",
			fmt.Sprintf("No cell adjacent to existing plants benefits %s.", def.Name), a.window)
		return
	}

	var lines []string
	for _, s := range suggestions {
		line := fmt.Sprintf("(%d, %d) — score %d", s.X, s.Y, s.Score)
		if len(s.Companions) > 0 {
			line += ", near " + strings.Join(s.Companions, ", ")
		}
		lines = append(lines, line)
	}
	dialog.ShowInformation(
		fmt.Sprintf("Best spots for %s", def.Name),
		strings.Join(lines, "\n"),
		a.window,
	)
}

func (a *App) showCatalogAudit() {
	warnings := a.catalog.AuditRelations()
	if len(warnings) == 0 {
		dialog.ShowInformation("Catalog Relations", "All companion and avoid references are consistent.", a.window)
		return
	}
	dialog.ShowInformation("Catalog Relations",
		fmt.Sprintf("%d issues found:\n\n%s", len(warnings), strings.Join(warnings, "\n")),
		a.window,
	)
}

// ─── Export / Import ───────────────────────────────────────

func (a *App) exportPlanJSON() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		doc := export.BuildPlanDocument(a.store.Settings(), a.store.Plants(), a.store.Structures(), a.store.Paths(), &a.catalog)
		if err := export.ExportPlan(writer.URI().Path(), doc); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.rememberRecentPlan(writer.URI().Path())
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Plan saved to %s", writer.URI().Path()), a.window)
	}, a.window)
	d.SetFileName(export.SuggestedFilename(a.store.Settings().Name))
	d.Show()
}

func (a *App) openPlan() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result, err := plantimporter.ImportPlan(reader.URI().Path(), &a.catalog)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}

		store, err := model.NewPlacementStore(result.Settings, &a.catalog, a.log)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		store.Load(result.Plants, result.Structures, result.Paths)
		a.store = store
		a.plotCanvas.SetSettings(result.Settings)
		a.refreshCanvas()
		a.rememberRecentPlan(reader.URI().Path())

		if len(result.Warnings) > 0 {
			dialog.ShowInformation("Plan Loaded with Warnings",
				strings.Join(result.Warnings, "\n"), a.window)
		} else {
			a.statusLabel.SetText(fmt.Sprintf("Loaded plan %q", result.Settings.Name))
		}
	}, a.window)
	d.Show()
}

func (a *App) exportPDF() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		err = export.ExportPDF(writer.URI().Path(), a.store.Settings(),
			a.store.Plants(), a.store.Structures(), a.store.Paths(), &a.catalog)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("PDF saved to %s", writer.URI().Path()), a.window)
	}, a.window)
	name := export.SuggestedFilename(a.store.Settings().Name)
	d.SetFileName(strings.TrimSuffix(name, ".json") + ".pdf")
	d.Show()
}

func (a *App) exportLabels() {
	if len(a.store.Plants()) == 0 {
		dialog.ShowInformation("No plants", "Place at least one plant before exporting labels.", a.window)
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := export.ExportLabels(writer.URI().Path(), a.store.Plants(), &a.catalog); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Labels saved to %s", writer.URI().Path()), a.window)
	}, a.window)
	d.SetFileName("plant-labels.pdf")
	d.Show()
}

func (a *App) importCSV() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := plantimporter.ImportCSV(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) importExcel() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := plantimporter.ImportExcel(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) importDXF() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := plantimporter.ImportSiteDXF(reader.URI().Path())
		if len(result.Errors) > 0 {
			dialog.ShowError(fmt.Errorf("%s", strings.Join(result.Errors, "\n")), a.window)
			return
		}
		added := project.MergeStructureDefinitions(&a.catalog, result.Structures)
		a.saveCatalog()
		dialog.ShowInformation("Import Complete",
			fmt.Sprintf("Added %d structures from site plan.", added), a.window)
	}, a.window)
}

func (a *App) handleImportResult(result plantimporter.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}

	for _, w := range result.Warnings {
		a.log.Warn("import warning", zap.String("detail", w))
	}

	if len(result.Plants) > 0 {
		added := project.MergePlantDefinitions(&a.catalog, result.Plants)
		a.saveCatalog()
		a.refreshCatalogList("")

		msg := fmt.Sprintf("Successfully imported %d plants.", added)
		if skipped := len(result.Plants) - added; skipped > 0 {
			msg += fmt.Sprintf("\n\n%d duplicates were skipped.", skipped)
		}
		if len(result.Errors) > 0 {
			msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
		}
		dialog.ShowInformation("Import Complete", msg, a.window)
	}
}

func (a *App) saveCatalog() {
	path, err := project.DefaultCatalogPath()
	if err != nil {
		a.log.Warn("cannot resolve catalog path", zap.Error(err))
		return
	}
	if err := project.SaveCatalog(path, a.catalog); err != nil {
		a.log.Warn("catalog save failed", zap.Error(err))
	}
}

// rememberRecentPlan records the path in the config's recent plan list.
func (a *App) rememberRecentPlan(path string) {
	recent := []string{path}
	for _, p := range a.config.RecentPlans {
		if p != path && len(recent) < 10 {
			recent = append(recent, p)
		}
	}
	a.config.RecentPlans = recent
	if err := project.SaveAppConfig(project.DefaultConfigPath(), a.config); err != nil {
		a.log.Warn("config save failed", zap.Error(err))
	}
}
