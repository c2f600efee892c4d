// Package api provides the client for the remote appointment service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/masterfit/fitcal/internal/booking"
)

// Endpoint paths of the appointment service.
const (
	resourcesPath = "/MasterFit_Calender_Get_Appt_Resource_Nutration"
	slotsPath     = "/MasterFit_APP_GetAppointment/Calender"
	mutatePath    = "/Masterfit_Calender_Nutation_Update"
)

// ErrEmptyBaseURL is returned when no service URL is configured.
var ErrEmptyBaseURL = errors.New("api base url is not configured")

// ServerError is a well-formed response in which the service rejected
// the request. Message carries the server-provided text when present.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return "server rejected the request"
	}
	return e.Message
}

// Gateway is the outbound interface to the appointment service.
type Gateway interface {
	// ListResources returns the bookable resources for a customer.
	ListResources(ctx context.Context, customerID string) ([]booking.Resource, error)

	// ListSlots returns the appointment slots for one resource on one date.
	ListSlots(ctx context.Context, customerID, date, resourceID string) ([]*booking.Slot, error)

	// UpdateAppointment mutates an appointment's status and notes.
	// It never falls back to fixtures: failures propagate to the caller.
	UpdateAppointment(ctx context.Context, appointmentID string, status booking.Status, notes string) error
}

// Client talks to the live appointment service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given service base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListResources fetches the resource list for a customer.
func (c *Client) ListResources(ctx context.Context, customerID string) ([]booking.Resource, error) {
	body, err := c.get(ctx, resourcesPath, url.Values{"Customer_Id": {customerID}})
	if err != nil {
		return nil, err
	}

	var wire []resourceWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("decoding resource list: %w", err)
	}

	resources := make([]booking.Resource, 0, len(wire))
	for _, w := range wire {
		resources = append(resources, w.toDomain())
	}
	return resources, nil
}

// ListSlots fetches the slot list for one (customer, date, resource).
// A well-formed failure object in place of the array is returned as a
// ServerError, distinct from transport errors.
func (c *Client) ListSlots(ctx context.Context, customerID, date, resourceID string) ([]*booking.Slot, error) {
	body, err := c.get(ctx, slotsPath, url.Values{
		"Customer_Id": {customerID},
		"Date":        {date},
		"Resource_Id": {resourceID},
	})
	if err != nil {
		return nil, err
	}

	// The service signals logical failures with an object where the
	// array would be.
	if isObject(body) {
		var res resultWire
		if err := json.Unmarshal(body, &res); err != nil {
			return nil, fmt.Errorf("decoding slot response: %w", err)
		}
		return nil, &ServerError{Message: res.MsgEn}
	}

	var wire []slotWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("decoding slot list: %w", err)
	}

	slots := make([]*booking.Slot, 0, len(wire))
	for _, w := range wire {
		s, err := w.toDomain()
		if err != nil {
			return nil, fmt.Errorf("slot %q: %w", w.AppointmentID, err)
		}
		slots = append(slots, s)
	}
	return slots, nil
}

// UpdateAppointment posts a status/notes mutation for an appointment.
// The appointment id is validated locally: no network call is issued
// without one.
func (c *Client) UpdateAppointment(ctx context.Context, appointmentID string, status booking.Status, notes string) error {
	if appointmentID == "" {
		return booking.ErrMissingAppointmentID
	}
	if c.baseURL == "" {
		return ErrEmptyBaseURL
	}

	payload := map[string]string{
		"Appointment_Id": appointmentID,
		"Notes":          notes,
		"Status":         strconv.Itoa(int(status)),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+mutatePath, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !is2xx(resp.StatusCode) {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("appointment update failed (status %d): %s", resp.StatusCode, string(body))
	}

	var res resultWire
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if res.Result != "success" {
		return &ServerError{Message: res.MsgEn}
	}

	return nil
}

// get performs a GET request and returns the raw response body.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if c.baseURL == "" {
		return nil, ErrEmptyBaseURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !is2xx(resp.StatusCode) {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return body, nil
}

// is2xx reports whether a status code signals success.
func is2xx(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

// isObject reports whether a JSON body is an object rather than an array.
func isObject(body []byte) bool {
	for _, b := range body {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}
