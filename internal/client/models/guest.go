// Package models defines the client-side guest records held by the CLI.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// Group is the invitee's side of the guest list.
type Group string

const (
	GroupFamily  Group = "Family"
	GroupFriends Group = "Friends"
)

// Status is the invitee's confirmation state.
type Status string

const (
	StatusConfirmed     Status = "Confirmed"
	StatusPending       Status = "Pending"
	StatusWillNotAttend Status = "WillNotAttend"
)

// Accommodation names one of the lodgings booked for the event.
// The zero value means no lodging is assigned.
type Accommodation string

const (
	AccommodationNone          Accommodation = ""
	AccommodationSandi         Accommodation = "Sandi"
	AccommodationAconchego     Accommodation = "Aconchego"
	AccommodationBomJardim     Accommodation = "Vila Bom jardim"
	AccommodationBartholomeu   Accommodation = "Bartholomeu"
	AccommodationBarcoProprio  Accommodation = "Barco próprio"
	AccommodationPousadaLitera Accommodation = "Pousada Literária"
)

var (
	Groups         = []Group{GroupFamily, GroupFriends}
	Statuses       = []Status{StatusConfirmed, StatusPending, StatusWillNotAttend}
	Accommodations = []Accommodation{
		AccommodationSandi,
		AccommodationAconchego,
		AccommodationBomJardim,
		AccommodationBartholomeu,
		AccommodationBarcoProprio,
		AccommodationPousadaLitera,
	}
)

var ErrUnknownValue = errors.New("unknown value")

// Guest is one invitee. Arrived is the only field mirrored to the remote
// arrival store.
type Guest struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	InviteName    string        `json:"inviteName"`
	Group         Group         `json:"group"`
	Accommodation Accommodation `json:"accommodation,omitempty"`
	Status        Status        `json:"status"`
	Arrived       bool          `json:"arrived"`
}

// Label is the human form of a status.
func (s Status) Label() string {
	if s == StatusWillNotAttend {
		return "Will not attend"
	}
	return string(s)
}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

func (g Group) Valid() bool {
	for _, v := range Groups {
		if v == g {
			return true
		}
	}
	return false
}

// Valid reports whether a is one of the known lodgings or empty.
func (a Accommodation) Valid() bool {
	if a == AccommodationNone {
		return true
	}
	for _, v := range Accommodations {
		if v == a {
			return true
		}
	}
	return false
}

func norm(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// ParseStatus accepts either the stored value or its label, case-insensitively.
func ParseStatus(s string) (Status, error) {
	n := norm(s)
	for _, v := range Statuses {
		if n == norm(string(v)) || n == norm(v.Label()) {
			return v, nil
		}
	}
	return "", fmt.Errorf("status %q: %w", s, ErrUnknownValue)
}

func ParseGroup(s string) (Group, error) {
	n := norm(s)
	for _, v := range Groups {
		if n == norm(string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("group %q: %w", s, ErrUnknownValue)
}

// ParseAccommodation never returns AccommodationNone; "no lodging" is
// expressed by leaving the field empty rather than parsing a name.
func ParseAccommodation(s string) (Accommodation, error) {
	n := norm(s)
	for _, v := range Accommodations {
		if n == norm(string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("accommodation %q: %w", s, ErrUnknownValue)
}

// Validate checks the enum fields and the presence of an id.
func (g Guest) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return errors.New("id is empty")
	}
	if !g.Group.Valid() {
		return fmt.Errorf("group %q: %w", g.Group, ErrUnknownValue)
	}
	if !g.Status.Valid() {
		return fmt.Errorf("status %q: %w", g.Status, ErrUnknownValue)
	}
	if !g.Accommodation.Valid() {
		return fmt.Errorf("accommodation %q: %w", g.Accommodation, ErrUnknownValue)
	}
	return nil
}

// Clone returns a copy of list so callers can never mutate shared state.
func Clone(list []Guest) []Guest {
	if list == nil {
		return nil
	}
	out := make([]Guest, len(list))
	copy(out, list)
	return out
}
