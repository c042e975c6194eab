package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"ricettario/internal/backup"
	"ricettario/internal/catalog"
	"ricettario/internal/i18n"
	"ricettario/internal/util"
	"ricettario/internal/wizard"
)

const (
	viewBrowser  = "browser"
	viewDetail   = "detail"
	viewEditor   = "editor"
	viewSettings = "settings"
	viewWizard   = "wizard"
	viewHelp     = "help"
)

type model struct {
	ctx     context.Context
	repo    *catalog.Repository
	codec   *backup.Codec
	wiz     *wizard.Wizard
	loc     *i18n.Localizer
	cfg     util.Config
	version string

	view   string
	width  int
	height int
	pal    palette
	status string

	// browser
	filtered     []catalog.Recipe
	index        int
	categoryIdx  int
	search       string
	searchActive bool

	// detail
	detailRendered string

	// editor
	editID    string
	inputs    []string
	fieldIdx  int
	editError string

	// settings: provider form
	provEditing bool
	provFields  [3]string
	provFieldIx int
	provIndex   int

	// wizard credential entry
	wizField int

	scrollOffset int
	maxScroll    int
}

// Editor field order. Category and difficulty cycle instead of taking text.
const (
	fieldTitle = iota
	fieldDescription
	fieldCategory
	fieldTime
	fieldDifficulty
	fieldCalories
	fieldIngredients
	fieldSteps
	fieldNotes
	fieldCount
)

func initialModel(ctx context.Context, repo *catalog.Repository, codec *backup.Codec, wiz *wizard.Wizard, cfg util.Config, version string) model {
	settings := repo.LoadSettings()
	lang := cfg.Language
	if lang == "" {
		lang = settings.Language
	}
	m := model{
		ctx:     ctx,
		repo:    repo,
		codec:   codec,
		wiz:     wiz,
		loc:     i18n.New(lang),
		cfg:     cfg,
		version: version,
		view:    viewBrowser,
		pal:     paletteFor(settings.Theme),
	}
	m.refreshRecipes()
	return m
}

func (m *model) refreshRecipes() {
	m.filtered = catalog.FilterRecipes(m.repo.LoadRecipes(), catalog.Categories[m.categoryIdx], m.search)
	if m.index >= len(m.filtered) {
		m.index = len(m.filtered) - 1
	}
	if m.index < 0 {
		m.index = 0
	}
}

func (m *model) selected() (catalog.Recipe, bool) {
	if m.index < 0 || m.index >= len(m.filtered) {
		return catalog.Recipe{}, false
	}
	return m.filtered[m.index], true
}

// tea.Model implementation ---------------------------------------------------

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case connTestedMsg:
		return m.applyConnTested(msg)
	case schemaCheckedMsg:
		return m.applySchemaChecked(msg)
	case provisionedMsg:
		return m.applyProvisioned(msg)
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m model) handleKey(k string) (tea.Model, tea.Cmd) {
	if k == "ctrl+c" {
		m.wiz.Close()
		return m, tea.Quit
	}
	switch m.view {
	case viewBrowser:
		return m.updateBrowser(k)
	case viewDetail:
		return m.updateDetail(k)
	case viewEditor:
		return m.updateEditor(k)
	case viewSettings:
		return m.updateSettings(k)
	case viewWizard:
		return m.updateWizard(k)
	case viewHelp:
		if k == "esc" || k == "q" || k == "?" {
			m.view = viewBrowser
		}
		return m, nil
	}
	return m, nil
}

// Browser --------------------------------------------------------------------

func (m model) updateBrowser(k string) (tea.Model, tea.Cmd) {
	if m.searchActive {
		switch {
		case k == "esc":
			m.searchActive = false
			m.search = ""
			m.refreshRecipes()
		case k == "enter":
			m.searchActive = false
		case k == "backspace" && len(m.search) > 0:
			m.search = trimLastRune(m.search)
			m.refreshRecipes()
		case isRuneInput(k):
			m.search += k
			m.refreshRecipes()
		}
		return m, nil
	}
	switch k {
	case "q":
		m.wiz.Close()
		return m, tea.Quit
	case "up", "k":
		if m.index > 0 {
			m.index--
		}
	case "down", "j":
		if m.index < len(m.filtered)-1 {
			m.index++
		}
	case "left", "h":
		m.categoryIdx = (m.categoryIdx + len(catalog.Categories) - 1) % len(catalog.Categories)
		m.refreshRecipes()
	case "right", "l":
		m.categoryIdx = (m.categoryIdx + 1) % len(catalog.Categories)
		m.refreshRecipes()
	case "/":
		m.searchActive = true
	case "enter":
		if rec, ok := m.selected(); ok {
			m.detailRendered = m.renderRecipeMarkdown(rec)
			m.scrollOffset = 0
			m.view = viewDetail
		}
	case "n":
		m.openEditor(catalog.Recipe{})
	case "e":
		if rec, ok := m.selected(); ok {
			m.openEditor(rec)
		}
	case "x":
		if rec, ok := m.selected(); ok {
			if err := m.repo.DeleteRecipe(rec.ID); err != nil {
				m.status = err.Error()
			}
			m.refreshRecipes()
		}
	case "s":
		m.view = viewSettings
		m.status = ""
	case "?":
		m.view = viewHelp
	}
	return m, nil
}

func (m model) updateDetail(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "esc", "q":
		m.view = viewBrowser
	case "e":
		if rec, ok := m.selected(); ok {
			m.openEditor(rec)
		}
	case "down", "j":
		m.scrollOffset += 3
	case "up", "k":
		m.scrollOffset -= 3
	case "pgdown", "ctrl+f":
		m.scrollOffset += 12
	case "pgup", "ctrl+b":
		m.scrollOffset -= 12
	case "home":
		m.scrollOffset = 0
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
	return m, nil
}

// Editor ---------------------------------------------------------------------

func (m *model) openEditor(rec catalog.Recipe) {
	m.editID = rec.ID
	m.inputs = make([]string, fieldCount)
	m.inputs[fieldTitle] = rec.Title
	m.inputs[fieldDescription] = rec.Description
	m.inputs[fieldCategory] = rec.Category
	if rec.Category == "" {
		m.inputs[fieldCategory] = catalog.Categories[1]
	}
	if rec.TimeMinutes > 0 {
		m.inputs[fieldTime] = strconv.Itoa(rec.TimeMinutes)
	}
	m.inputs[fieldDifficulty] = rec.Difficulty
	if rec.Difficulty == "" {
		m.inputs[fieldDifficulty] = catalog.Difficulties[0]
	}
	if rec.Calories > 0 {
		m.inputs[fieldCalories] = strconv.Itoa(rec.Calories)
	}
	m.inputs[fieldIngredients] = formatIngredients(rec.Ingredients)
	m.inputs[fieldSteps] = formatSteps(rec.Steps)
	m.inputs[fieldNotes] = rec.Notes
	m.fieldIdx = 0
	m.editError = ""
	m.view = viewEditor
}

func (m model) updateEditor(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "esc":
		m.view = viewBrowser
		return m, nil
	case "tab", "down":
		m.fieldIdx = (m.fieldIdx + 1) % fieldCount
		return m, nil
	case "shift+tab", "up":
		m.fieldIdx = (m.fieldIdx + fieldCount - 1) % fieldCount
		return m, nil
	case "ctrl+s":
		m.saveEditor()
		return m, nil
	case "enter":
		if m.fieldIdx == fieldCount-1 {
			m.saveEditor()
		} else {
			m.fieldIdx++
		}
		return m, nil
	}
	switch m.fieldIdx {
	case fieldCategory:
		// skip the "tutte" filter entry
		if k == "left" || k == "right" {
			m.inputs[fieldCategory] = cycleValue(catalog.Categories[1:], m.inputs[fieldCategory], stepFor(k))
		}
	case fieldDifficulty:
		if k == "left" || k == "right" {
			m.inputs[fieldDifficulty] = cycleValue(catalog.Difficulties, m.inputs[fieldDifficulty], stepFor(k))
		}
	default:
		switch {
		case k == "backspace" && len(m.inputs[m.fieldIdx]) > 0:
			m.inputs[m.fieldIdx] = trimLastRune(m.inputs[m.fieldIdx])
		case isRuneInput(k):
			m.inputs[m.fieldIdx] += k
		}
	}
	return m, nil
}

func (m *model) saveEditor() {
	title := strings.TrimSpace(m.inputs[fieldTitle])
	if title == "" {
		m.editError = editorLabels[fieldTitle] + "?"
		return
	}
	rec := catalog.Recipe{
		ID:          m.editID,
		Title:       title,
		Description: strings.TrimSpace(m.inputs[fieldDescription]),
		Category:    m.inputs[fieldCategory],
		TimeMinutes: atoiOrZero(m.inputs[fieldTime]),
		Difficulty:  m.inputs[fieldDifficulty],
		Calories:    atoiOrZero(m.inputs[fieldCalories]),
		Ingredients: parseIngredients(m.inputs[fieldIngredients]),
		Steps:       parseSteps(m.inputs[fieldSteps]),
		Notes:       strings.TrimSpace(m.inputs[fieldNotes]),
	}
	if _, err := m.repo.UpsertRecipe(rec); err != nil {
		m.editError = err.Error()
		return
	}
	m.refreshRecipes()
	m.view = viewBrowser
}

// Settings -------------------------------------------------------------------

func (m model) updateSettings(k string) (tea.Model, tea.Cmd) {
	if m.provEditing {
		return m.updateProviderForm(k)
	}
	settings := m.repo.LoadSettings()
	switch k {
	case "esc", "q":
		m.view = viewBrowser
	case "g":
		next := cycleValue(catalog.Languages, settings.Language, 1)
		if _, err := m.repo.UpdateSettings(catalog.SettingsPatch{Language: &next}); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.loc = i18n.New(next)
	case "t":
		next := nextThemeName(settings.Theme, 1)
		if _, err := m.repo.UpdateSettings(catalog.SettingsPatch{Theme: &next}); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.pal = paletteFor(next)
	case "w":
		m.wizField = 0
		m.status = ""
		m.view = viewWizard
		m.wiz.Open()
	case "e":
		path, err := m.codec.ExportFile(m.cfg.DataDir)
		if err != nil {
			m.status = err.Error()
		} else {
			m.status = m.loc.Text(i18n.KeyDataExported) + " " + path
		}
	case "c":
		if err := m.codec.Clear(); err != nil {
			m.status = err.Error()
		} else {
			m.status = m.loc.Text(i18n.KeyDataCleared)
			m.search = ""
			m.categoryIdx = 0
			m.refreshRecipes()
			m.loc = i18n.New(m.repo.LoadSettings().Language)
			m.pal = paletteFor(m.repo.LoadSettings().Theme)
		}
	case "d":
		// drop only the stored recipe collection, settings survive
		if err := m.repo.DeleteKey(catalog.KeyRecipes); err != nil {
			m.status = err.Error()
		} else {
			m.status = m.loc.Text(i18n.KeyDataCleared)
			m.refreshRecipes()
		}
	case "a":
		m.provEditing = true
		m.provFields = [3]string{}
		m.provFieldIx = 0
	case "up":
		if m.provIndex > 0 {
			m.provIndex--
		}
	case "down":
		if m.provIndex < len(settings.AIProviders)-1 {
			m.provIndex++
		}
	case "x":
		if m.provIndex >= 0 && m.provIndex < len(settings.AIProviders) {
			if err := m.repo.RemoveProvider(settings.AIProviders[m.provIndex].Name); err != nil {
				m.status = err.Error()
			}
			if m.provIndex > 0 {
				m.provIndex--
			}
		}
	}
	return m, nil
}

func (m model) updateProviderForm(k string) (tea.Model, tea.Cmd) {
	switch {
	case k == "esc":
		m.provEditing = false
	case k == "tab" || k == "down":
		m.provFieldIx = (m.provFieldIx + 1) % len(m.provFields)
	case k == "shift+tab" || k == "up":
		m.provFieldIx = (m.provFieldIx + len(m.provFields) - 1) % len(m.provFields)
	case k == "enter":
		ok, err := m.repo.VerifyProvider(m.provFields[0], m.provFields[1], m.provFields[2])
		if err != nil {
			m.status = err.Error()
		} else if ok {
			m.status = m.loc.Text(i18n.KeyActive)
		} else {
			m.status = m.loc.Text(i18n.KeyInactive)
		}
		m.provEditing = false
	case k == "backspace" && len(m.provFields[m.provFieldIx]) > 0:
		m.provFields[m.provFieldIx] = trimLastRune(m.provFields[m.provFieldIx])
	case isRuneInput(k):
		m.provFields[m.provFieldIx] += k
	}
	return m, nil
}

// Rendering ------------------------------------------------------------------

func (m model) View() string {
	switch m.view {
	case viewBrowser:
		return m.renderBrowser()
	case viewDetail:
		return m.renderDetail()
	case viewEditor:
		return m.renderEditor()
	case viewSettings:
		return m.renderSettings()
	case viewWizard:
		return m.renderWizard()
	case viewHelp:
		return m.renderHelp()
	}
	return ""
}

func (m model) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(m.pal.Accent)
}

func (m model) mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(m.pal.Muted)
}

func (m model) boxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.pal.Border).
		Padding(1, 2).
		Width(width)
}

func (m model) renderTopBar() string {
	left := m.loc.Text(i18n.KeyAppTitle) + "  v" + m.version
	storage := m.repo.LoadSettings().DataStorage
	right := fmt.Sprintf("[%s] %s", storage, i18n.LanguageName(m.loc.Language()))
	w := m.width
	if w <= 0 {
		w = 100
	}
	gap := w - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return m.titleStyle().Render(left + strings.Repeat(" ", gap) + right)
}

func (m model) renderBottomBar(line string) string {
	out := m.mutedStyle().Render(line)
	if m.status != "" {
		out += "\n" + lipgloss.NewStyle().Foreground(m.pal.Warning).Render(m.status)
	}
	return out
}

func (m model) renderBrowser() string {
	var b strings.Builder
	b.WriteString(m.renderTopBar() + "\n\n")

	cats := make([]string, 0, len(catalog.Categories))
	for i, c := range catalog.Categories {
		if i == m.categoryIdx {
			cats = append(cats, m.titleStyle().Render("["+c+"]"))
		} else {
			cats = append(cats, m.mutedStyle().Render(c))
		}
	}
	b.WriteString(strings.Join(cats, " ") + "\n")

	search := m.loc.Text(i18n.KeySearch) + ": " + m.search
	if m.searchActive {
		search += "_"
	}
	b.WriteString(search + "\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(m.mutedStyle().Render(m.loc.Text(i18n.KeyNoRecipes)) + "\n")
	}
	for i, rec := range m.filtered {
		cursor := "  "
		line := fmt.Sprintf("%-30s %-12s %3d %s  %s", truncate(rec.Title, 30), rec.Category,
			rec.TimeMinutes, m.loc.Text(i18n.KeyMinutes), rec.Difficulty)
		if i == m.index {
			cursor = "> "
			line = m.titleStyle().Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n" + m.renderBottomBar(
		"[enter] open  [n] new  [e] edit  [x] delete  [/] "+m.loc.Text(i18n.KeySearch)+
			"  [←→] categoria  [s] "+m.loc.Text(i18n.KeySettings)+"  [?] "+m.loc.Text(i18n.KeyHelp)+"  [q] quit"))
	return b.String()
}

// renderRecipeMarkdown builds the detail markdown and renders it with glamour.
func (m model) renderRecipeMarkdown(rec catalog.Recipe) string {
	md := recipeMarkdown(rec, m.loc)
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

func recipeMarkdown(rec catalog.Recipe, loc *i18n.Localizer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", rec.Title)
	if rec.Description != "" {
		b.WriteString(rec.Description + "\n\n")
	}
	fmt.Fprintf(&b, "**%s** · %d %s · %s", rec.Category, rec.TimeMinutes, loc.Text(i18n.KeyMinutes), rec.Difficulty)
	if rec.Calories > 0 {
		fmt.Fprintf(&b, " · %d %s", rec.Calories, loc.Text(i18n.KeyCalories))
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "## %s\n\n", loc.Text(i18n.KeyIngredients))
	for _, ing := range rec.Ingredients {
		if ing.Quantity != "" {
			fmt.Fprintf(&b, "- %s %s\n", ing.Quantity, ing.Item)
		} else {
			fmt.Fprintf(&b, "- %s\n", ing.Item)
		}
	}
	fmt.Fprintf(&b, "\n## %s\n\n", loc.Text(i18n.KeySteps))
	for _, step := range rec.Steps {
		fmt.Fprintf(&b, "%d. %s\n", step.Number, step.Text)
	}
	if rec.Notes != "" {
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", loc.Text(i18n.KeyNotes), rec.Notes)
	}
	return b.String()
}

func (m model) renderDetail() string {
	lines := strings.Split(m.detailRendered, "\n")
	avail := m.height - 3
	offset := m.scrollOffset
	if avail > 5 && len(lines) > avail {
		if offset > len(lines)-avail {
			offset = len(lines) - avail
		}
		lines = lines[offset : offset+avail]
	}
	return strings.Join(lines, "\n") + "\n" +
		m.renderBottomBar("[e] edit  [↑↓] scroll  [esc] back")
}

var editorLabels = [fieldCount]string{
	"Titolo", "Descrizione", "Categoria", "Tempo (min)", "Difficoltà",
	"Calorie", "Ingredienti (voce:quantità; ...)", "Passaggi (uno; per; voce)", "Note",
}

func (m model) renderEditor() string {
	var b strings.Builder
	b.WriteString(m.titleStyle().Render(m.loc.Text(i18n.KeyRecipes)) + "\n\n")
	for i := 0; i < fieldCount; i++ {
		cursor := "  "
		val := m.inputs[i]
		if i == m.fieldIdx {
			cursor = "> "
			val += "_"
		}
		b.WriteString(fmt.Sprintf("%s%-34s %s\n", cursor, editorLabels[i]+":", val))
	}
	if m.editError != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(m.pal.Danger).Render(m.editError) + "\n")
	}
	b.WriteString("\n" + m.mutedStyle().Render("[tab] campo  [←→] valore  [ctrl+s] salva  [esc] annulla"))
	return m.boxStyle(76).Render(b.String())
}

func (m model) renderSettings() string {
	settings := m.repo.LoadSettings()
	var b strings.Builder
	b.WriteString(m.titleStyle().Render(m.loc.Text(i18n.KeySettings)) + "\n\n")
	fmt.Fprintf(&b, "%s: %s  [g]\n", m.loc.Text(i18n.KeyLanguage), i18n.LanguageName(settings.Language))
	fmt.Fprintf(&b, "%s: %s  [t]\n\n", m.loc.Text(i18n.KeyTheme), settings.Theme)

	b.WriteString(m.titleStyle().Render(m.loc.Text(i18n.KeyDataManagement)) + "\n")
	storageLine := settings.DataStorage
	if settings.Remote != nil && settings.Remote.Connected {
		storageLine += " · " + settings.Remote.URL
	}
	fmt.Fprintf(&b, "%s  [w]\n", storageLine)
	fmt.Fprintf(&b, "[e] %s   [c] %s   [d] %s\n", m.loc.Text(i18n.KeyExportData), m.loc.Text(i18n.KeyClearData), m.loc.Text(i18n.KeyRecipes))
	b.WriteString(m.mutedStyle().Render(m.loc.Text(i18n.KeyImportHint)) + "\n\n")

	b.WriteString(m.titleStyle().Render(m.loc.Text(i18n.KeyAIIntegration)) + "\n")
	if m.provEditing {
		labels := [3]string{"Provider", "API key", "Model"}
		for i, label := range labels {
			cursor := "  "
			val := m.provFields[i]
			if i == 1 {
				val = strings.Repeat("*", len(val))
			}
			if i == m.provFieldIx {
				cursor = "> "
				val += "_"
			}
			fmt.Fprintf(&b, "%s%-10s %s\n", cursor, label+":", val)
		}
		fmt.Fprintf(&b, "%s\n", m.mutedStyle().Render("[enter] "+m.loc.Text(i18n.KeyVerifyAndSave)+"  [esc] annulla"))
	} else {
		if len(settings.AIProviders) == 0 {
			b.WriteString(m.mutedStyle().Render("(none)") + "\n")
		}
		for i, p := range settings.AIProviders {
			cursor := "  "
			if i == m.provIndex {
				cursor = "> "
			}
			state := m.loc.Text(i18n.KeyInactive)
			if p.Active {
				state = m.loc.Text(i18n.KeyActive)
			}
			fmt.Fprintf(&b, "%s%s (%s) %s\n", cursor, p.Name, p.Model, state)
		}
		fmt.Fprintf(&b, "%s\n", m.mutedStyle().Render("[a] add  [x] "+m.loc.Text(i18n.KeyRemove)))
	}

	b.WriteString("\n" + m.renderBottomBar("[esc] back"))
	return m.boxStyle(72).Render(b.String())
}

func (m model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.titleStyle().Render(m.loc.Text(i18n.KeyHelp)) + "\n\n")
	b.WriteString(m.loc.Text(i18n.KeyRecipes) + ": enter/n/e/x, / " + m.loc.Text(i18n.KeySearch) + ", ←→ categoria\n")
	b.WriteString(m.loc.Text(i18n.KeySettings) + ": g/t/w/e/c/a\n")
	b.WriteString(m.loc.Text(i18n.KeyImportHint) + "\n\n")
	b.WriteString(m.mutedStyle().Render("[esc] back"))
	return m.boxStyle(60).Render(b.String())
}

// Helpers --------------------------------------------------------------------

func stepFor(k string) int {
	if k == "left" {
		return -1
	}
	return 1
}

func cycleValue(values []string, current string, step int) string {
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(values)) % len(values)
	return values[idx]
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

func trimLastRune(s string) string {
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}

func isRuneInput(s string) bool {
	runes := []rune(s)
	return len(runes) == 1 && runes[0] >= 32
}

// parseIngredients splits "voce:quantità; voce" entries.
func parseIngredients(s string) []catalog.Ingredient {
	var out []catalog.Ingredient
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		item, qty, found := strings.Cut(part, ":")
		ing := catalog.Ingredient{Item: strings.TrimSpace(item)}
		if found {
			ing.Quantity = strings.TrimSpace(qty)
		}
		out = append(out, ing)
	}
	return out
}

func formatIngredients(ings []catalog.Ingredient) string {
	parts := make([]string, 0, len(ings))
	for _, ing := range ings {
		if ing.Quantity != "" {
			parts = append(parts, ing.Item+":"+ing.Quantity)
		} else {
			parts = append(parts, ing.Item)
		}
	}
	return strings.Join(parts, "; ")
}

// parseSteps numbers entries in input order.
func parseSteps(s string) []catalog.Step {
	var out []catalog.Step
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, catalog.Step{Number: len(out) + 1, Text: part})
	}
	return out
}

func formatSteps(steps []catalog.Step) string {
	parts := make([]string, 0, len(steps))
	for _, step := range steps {
		parts = append(parts, step.Text)
	}
	return strings.Join(parts, "; ")
}
