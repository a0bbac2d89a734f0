package input

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	logger "github.com/sirupsen/logrus"
	"keptn/promotion-formatter/pkg/config"
	"keptn/promotion-formatter/pkg/model"
)

// ErrAborted is returned when the user leaves the prompt before the batch is complete.
var ErrAborted = errors.New("prompt aborted")

type step int

const (
	stepInstance step = iota
	stepSource
	stepDestination
	stepPromotionType
	stepTargets
	stepConfirm
	stepDone
)

var stepLabels = map[step]string{
	stepInstance:      "Instance",
	stepSource:        "Source environment",
	stepDestination:   "Destination environment",
	stepPromotionType: "Promotion type (images, secrets, config-maps)",
	stepTargets:       "Targets (comma separated)",
	stepConfirm:       "Proceed anyway? (y/n)",
}

var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	answerStyle = lipgloss.NewStyle().Faint(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// PromptModel asks for the batch fields one after another. Targets that do not
// match the promotion type are shown and have to be confirmed or re-entered.
type PromptModel struct {
	input      textinput.Model
	step       step
	values     [stepConfirm]string
	mismatch   *config.ValidationMismatch
	notice     string
	overridden bool
	aborted    bool
}

func NewPromptModel() PromptModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	return PromptModel{input: ti}
}

func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PromptModel) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	m.notice = ""
	switch m.step {
	case stepConfirm:
		switch strings.ToLower(value) {
		case "y", "yes":
			m.overridden = true
			m.step = stepDone
			return m, tea.Quit
		case "n", "no":
			m.mismatch = nil
			m.step = stepTargets
		default:
			m.notice = "please answer y or n"
		}
		return m, nil
	case stepTargets:
		m.values[stepTargets] = value
		// unrecognized types are reported when the batch is formatted
		if promotionType, err := model.ParsePromotionType(m.values[stepPromotionType]); err == nil {
			if mismatch := config.CheckTargets(promotionType, model.ParseTargets(value)); mismatch != nil {
				logger.WithField("func", "submit").Debugf("asking for confirmation: %s", mismatch)
				m.mismatch = mismatch
				m.step = stepConfirm
				return m, nil
			}
		}
		m.step = stepDone
		return m, tea.Quit
	default:
		m.values[m.step] = value
		m.step++
		return m, nil
	}
}

func (m PromptModel) View() string {
	if m.step == stepDone || m.aborted {
		return ""
	}
	var b strings.Builder
	for s := stepInstance; s < m.step && s < stepConfirm; s++ {
		b.WriteString(answerStyle.Render(fmt.Sprintf("%s: %s", stepLabels[s], m.values[s])))
		b.WriteString("\n")
	}
	if m.mismatch != nil {
		b.WriteString(warnStyle.Render(m.mismatch.Error()))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(warnStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(labelStyle.Render(stepLabels[m.step]))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

// Batch returns the entered batch, or ErrAborted.
func (m PromptModel) Batch() (model.PromotionBatch, error) {
	if m.aborted || m.step != stepDone {
		return model.PromotionBatch{}, ErrAborted
	}
	return model.NewPromotionBatch(m.values[stepInstance], m.values[stepSource], m.values[stepDestination],
		m.values[stepPromotionType], m.values[stepTargets]), nil
}

// Overridden reports whether the user accepted targets that failed validation.
func (m PromptModel) Overridden() bool {
	return m.overridden
}

// Prompt runs the interactive prompt reading keys from in and drawing to out.
func Prompt(in io.Reader, out io.Writer) (batch model.PromotionBatch, overridden bool, err error) {
	p := tea.NewProgram(NewPromptModel(), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return batch, false, fmt.Errorf("running prompt: %w", err)
	}
	m, ok := final.(PromptModel)
	if !ok {
		return batch, false, fmt.Errorf("unexpected prompt model %T", final)
	}
	batch, err = m.Batch()
	return batch, m.Overridden(), err
}
