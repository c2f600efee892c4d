package tui

import (
	"strings"

	"github.com/masterfit/fitcal/internal/booking"
	"github.com/masterfit/fitcal/internal/dateutil"
	"github.com/masterfit/fitcal/internal/tui/view"
)

// renderModal renders the dialog for the current workflow state.
func (m Model) renderModal() string {
	switch m.workflow.State() {
	case StateRegisterPending:
		return m.renderRegisterModal()
	case StateUpdatePending:
		return m.renderUpdateModal()
	case StateViewingReadOnly:
		return m.renderDetailModal()
	case StateViewingEditable:
		return m.renderEditorModal()
	default:
		return ""
	}
}

func (m Model) modalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalStyle:      m.styles.ModalStyle,
		ModalTitleStyle: m.styles.ModalTitleStyle,
		ModalHintStyle:  m.styles.ModalHintStyle,
	}
}

func (m Model) detailStyles() view.SlotDetailStyles {
	return view.SlotDetailStyles{
		BodyStyle:  m.styles.ModalBodyStyle,
		LabelStyle: m.styles.ModalLabelStyle,
	}
}

func (m Model) renderRegisterModal() string {
	slot := m.workflow.Clicked()
	if slot == nil {
		return ""
	}
	body := view.RenderConfirmRegisterBody(view.ConfirmRegisterModel{
		ResourceName: m.workflow.Resource().DisplayName,
		TimeRange:    timeRange(slot),
		DateLabel:    dateutil.FormatDate(slot.TimeFrom),
	}, m.detailStyles())
	return view.RenderModalFrame("Register", body, "y confirm · v view · esc cancel", m.modalStyles())
}

func (m Model) renderUpdateModal() string {
	slot := m.workflow.Clicked()
	prev := m.workflow.Previous()
	if slot == nil || prev == nil {
		return ""
	}
	body := view.RenderUpdateChoiceBody(view.UpdateChoiceModel{
		OldTimeRange: prev.TimeFrom.Format("15:04") + " - " + prev.TimeTo.Format("15:04"),
		OldDateLabel: dateutil.FormatDate(prev.TimeFrom),
		NewResource:  m.workflow.Resource().DisplayName,
		NewTimeRange: timeRange(slot),
		NewDateLabel: dateutil.FormatDate(slot.TimeFrom),
	}, m.detailStyles())
	return view.RenderModalFrame("Move registration", body, "f finalize · o current · v new · esc cancel", m.modalStyles())
}

func (m Model) renderDetailModal() string {
	slot := m.workflow.ViewSlot()
	if slot == nil {
		return ""
	}
	body := view.RenderSlotDetailBody(m.slotDetailModel(slot), m.detailStyles())
	return view.RenderModalFrame("Appointment", body, "c copy · esc close", m.modalStyles())
}

func (m Model) renderEditorModal() string {
	slot := m.workflow.ViewSlot()
	if slot == nil {
		return ""
	}

	var body strings.Builder
	detail := m.slotDetailModel(slot)
	body.WriteString(m.styles.ModalBodyStyle.Render(" " + detail.ResourceName))
	body.WriteString("\n")
	body.WriteString(m.styles.ModalBodyStyle.Render(" " + detail.DateLabel + "  " + detail.TimeRange))
	body.WriteString("\n\n")
	body.WriteString(m.styles.ModalLabelStyle.Render(" Status:") + " " + m.renderStatusToggle())
	body.WriteString("\n\n")
	body.WriteString(m.styles.ModalLabelStyle.Render(" Notes:") + "\n")
	body.WriteString(" " + m.notesInput.View())

	return view.RenderModalFrame("Update appointment", body.String(), "tab status · enter submit · esc close", m.modalStyles())
}

// renderStatusToggle renders the tri-state status selector.
func (m Model) renderStatusToggle() string {
	statuses := []booking.Status{booking.StatusPending, booking.StatusAccepted, booking.StatusRejected}
	parts := make([]string, 0, len(statuses))
	for _, s := range statuses {
		style := m.styles.StatusInactiveStyle
		if s == m.editStatus {
			style = m.styles.StatusActiveStyle
		}
		parts = append(parts, style.Render(s.Label()))
	}
	return strings.Join(parts, m.styles.ModalBodyStyle.Render(" "))
}

// slotDetailModel flattens a slot into the detail view model.
func (m Model) slotDetailModel(slot *booking.Slot) view.SlotDetailModel {
	name := slot.ResourceName
	if name == "" {
		name = slot.ResourceID
	}
	return view.SlotDetailModel{
		ResourceName:  name,
		TimeRange:     timeRange(slot),
		DateLabel:     dateutil.FormatDate(slot.TimeFrom),
		StatusLabel:   statusLabel(slot),
		Notes:         slot.Notes,
		FullName:      slot.Detail.FullName,
		Phone:         slot.Detail.Phone,
		BirthDate:     slot.Detail.BirthDate,
		Subscription:  slot.Detail.SubscriptionNo,
		HasAttributes: slot.Detail.FullName != "" || slot.Detail.Phone != "",
	}
}

func timeRange(slot *booking.Slot) string {
	return slot.TimeFrom.Format("15:04") + " - " + slot.TimeTo.Format("15:04")
}

func statusLabel(slot *booking.Slot) string {
	if slot.StatusLabel != "" {
		return slot.StatusLabel
	}
	return slot.Status.Label()
}
