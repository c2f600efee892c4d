package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SlotDetailModel contains the fields needed to render a slot detail body.
type SlotDetailModel struct {
	ResourceName  string
	TimeRange     string
	DateLabel     string
	StatusLabel   string
	Notes         string
	FullName      string
	Phone         string
	BirthDate     string
	Subscription  string
	HasAttributes bool
}

// SlotDetailStyles groups styles for the slot detail body.
type SlotDetailStyles struct {
	BodyStyle  lipgloss.Style
	LabelStyle lipgloss.Style
}

// RenderSlotDetailBody renders the modal body for appointment details.
func RenderSlotDetailBody(model SlotDetailModel, styles SlotDetailStyles) string {
	var body strings.Builder

	body.WriteString(detailLine(styles, "Resource:", model.ResourceName))
	body.WriteString(detailLine(styles, "Date:", model.DateLabel))
	body.WriteString(detailLine(styles, "Time:", model.TimeRange))
	body.WriteString(detailLine(styles, "Status:", model.StatusLabel))

	if model.HasAttributes {
		body.WriteString("\n")
		body.WriteString(detailLine(styles, "Name:", model.FullName))
		body.WriteString(detailLine(styles, "Phone:", model.Phone))
		body.WriteString(detailLine(styles, "Born:", model.BirthDate))
		body.WriteString(detailLine(styles, "Subscription:", model.Subscription))
	}

	if model.Notes != "" {
		body.WriteString("\n")
		body.WriteString(styles.LabelStyle.Render(" Notes:") + "\n")
		body.WriteString(styles.BodyStyle.Render(" " + model.Notes))
	}

	return strings.TrimRight(body.String(), "\n")
}

func detailLine(styles SlotDetailStyles, label, value string) string {
	if value == "" {
		value = "-"
	}
	return styles.LabelStyle.Render(" "+label) + " " + styles.BodyStyle.Render(value) + "\n"
}

// CopyText flattens a slot detail into plain text for the clipboard.
func (m SlotDetailModel) CopyText() string {
	var b strings.Builder
	b.WriteString(m.ResourceName + "\n")
	b.WriteString(m.DateLabel + " " + m.TimeRange + "\n")
	b.WriteString("Status: " + m.StatusLabel + "\n")
	if m.HasAttributes {
		b.WriteString(m.FullName + " " + m.Phone + "\n")
	}
	if m.Notes != "" {
		b.WriteString("Notes: " + m.Notes + "\n")
	}
	return b.String()
}

// ConfirmRegisterModel contains the fields needed to render the register
// confirmation body.
type ConfirmRegisterModel struct {
	ResourceName string
	TimeRange    string
	DateLabel    string
}

// RenderConfirmRegisterBody renders the modal body for the register confirmation.
func RenderConfirmRegisterBody(model ConfirmRegisterModel, styles SlotDetailStyles) string {
	var body strings.Builder

	body.WriteString(styles.BodyStyle.Render(" "+model.ResourceName) + "\n")
	body.WriteString(styles.BodyStyle.Render(" "+model.DateLabel+"  "+model.TimeRange) + "\n\n")
	body.WriteString(styles.BodyStyle.Render(" Register for this appointment?"))

	return body.String()
}

// UpdateChoiceModel contains the fields for the move-registration body.
type UpdateChoiceModel struct {
	OldTimeRange string
	OldDateLabel string
	NewResource  string
	NewTimeRange string
	NewDateLabel string
}

// RenderUpdateChoiceBody renders the modal body shown when a click would
// move an existing registration to a new slot.
func RenderUpdateChoiceBody(model UpdateChoiceModel, styles SlotDetailStyles) string {
	var body strings.Builder

	body.WriteString(styles.LabelStyle.Render(" Current:") + " " +
		styles.BodyStyle.Render(model.OldDateLabel+"  "+model.OldTimeRange) + "\n")
	body.WriteString(styles.LabelStyle.Render(" New:") + "     " +
		styles.BodyStyle.Render(model.NewDateLabel+"  "+model.NewTimeRange) + "\n")
	body.WriteString(styles.BodyStyle.Render(" "+model.NewResource) + "\n\n")
	body.WriteString(styles.BodyStyle.Render(" Move your registration to this slot?"))

	return body.String()
}
