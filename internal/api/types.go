package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/masterfit/fitcal/internal/booking"
)

// flexString decodes a JSON value that may arrive as a string or a
// number. The service is inconsistent about identifier types.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// resourceWire is one element of the resource list response.
type resourceWire struct {
	ID     flexString `json:"ID"`
	NameEn string     `json:"Name_En"`
}

func (w resourceWire) toDomain() booking.Resource {
	return booking.Resource{
		ID:          string(w.ID),
		DisplayName: w.NameEn,
	}
}

// slotWire is one element of the slot list response.
type slotWire struct {
	AppointmentID  flexString `json:"Appointment_Id"`
	ResourceID     flexString `json:"Resource_Id"`
	Date           string     `json:"Date"`
	TimeFrom       string     `json:"Time_From"`
	TimeTo         string     `json:"Time_To"`
	Status         flexString `json:"Status"`
	StatusEn       string     `json:"Status_En"`
	CustomerID     flexString `json:"Customer_Id"`
	Notes          string     `json:"Notes"`
	CustomerName   string     `json:"Customer_Name"`
	Phone          flexString `json:"Phone"`
	BirthDate      string     `json:"Birth_Date"`
	Color          string     `json:"Color"`
	SubscriptionNo flexString `json:"Subscription_No"`
}

func (w slotWire) toDomain() (*booking.Slot, error) {
	from, err := parseTimestamp(w.Date, w.TimeFrom)
	if err != nil {
		return nil, fmt.Errorf("parsing Time_From: %w", err)
	}
	to, err := parseTimestamp(w.Date, w.TimeTo)
	if err != nil {
		return nil, fmt.Errorf("parsing Time_To: %w", err)
	}

	status := booking.StatusPending
	if w.Status != "" {
		code, err := strconv.Atoi(string(w.Status))
		if err != nil {
			return nil, fmt.Errorf("parsing Status %q: %w", w.Status, err)
		}
		status = booking.Status(code)
	}

	return &booking.Slot{
		AppointmentID:   string(w.AppointmentID),
		ResourceID:      string(w.ResourceID),
		Date:            w.Date,
		TimeFrom:        from,
		TimeTo:          to,
		Status:          status,
		StatusLabel:     w.StatusEn,
		OwnerCustomerID: string(w.CustomerID),
		Notes:           w.Notes,
		Detail: booking.SlotDetail{
			FullName:       w.CustomerName,
			Phone:          string(w.Phone),
			BirthDate:      w.BirthDate,
			Color:          w.Color,
			SubscriptionNo: string(w.SubscriptionNo),
		},
	}, nil
}

// resultWire is the discriminated result object the service returns
// for logical failures on reads and for all write responses.
type resultWire struct {
	Result string `json:"result"`
	MsgEn  string `json:"msg_en"`
}

// timestampLayouts are the formats the service has been observed to
// emit for slot boundaries.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// parseTimestamp parses a slot boundary. Bare "HH:MM" values are
// combined with the slot's own date field.
func parseTimestamp(date, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	if len(s) == 5 && s[2] == ':' && date != "" {
		if t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+s, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %s", s)
}
