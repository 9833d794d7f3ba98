package models

import (
	"fmt"
	"time"
)

type TicketStatus string

const (
	StatusNew        TicketStatus = "new"
	StatusAssigned   TicketStatus = "assigned"
	StatusInProgress TicketStatus = "in_progress"
	StatusCompleted  TicketStatus = "completed"
	StatusCancelled  TicketStatus = "cancelled"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case StatusNew, StatusAssigned, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s TicketStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// legalTransitions — разрешённые переходы статуса; админ их обходит.
var legalTransitions = map[TicketStatus][]TicketStatus{
	StatusNew:        {StatusAssigned, StatusInProgress, StatusCancelled},
	StatusAssigned:   {StatusInProgress, StatusCompleted, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

func CanTransition(from, to TicketStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type DeviceType string

const (
	DeviceSmartphone DeviceType = "smartphone"
	DeviceTablet     DeviceType = "tablet"
	DeviceLaptop     DeviceType = "laptop"
	DevicePC         DeviceType = "pc"
	DeviceConsole    DeviceType = "console"
	DeviceOther      DeviceType = "other"
)

type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type Ticket struct {
	ID           string       `json:"id"`
	TicketNumber string       `json:"ticketNumber"`
	UserID       string       `json:"userId"`
	DeviceType   DeviceType   `json:"deviceType" validate:"required,oneof=smartphone tablet laptop pc console other"`
	Brand        string       `json:"brand" validate:"required"`
	Model        string       `json:"model"`
	Problem      string       `json:"problem" validate:"required"`
	Urgency      string       `json:"urgency,omitempty"`
	ServiceID    string       `json:"serviceId,omitempty"`
	Status       TicketStatus `json:"status"`
	AssignedTo   string       `json:"assignedTo,omitempty"`
	Comments     []Comment    `json:"comments"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// NewTicketNumber строит номер вида TKT-<последние 8 цифр unix ms>.
// Уникальность только вероятностная, идентичность несёт uuid в ID.
func NewTicketNumber(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "TKT-" + ms
}

// TicketUpdate — частичное обновление, nil-поля не трогаются.
type TicketUpdate struct {
	DeviceType *DeviceType   `json:"deviceType"`
	Brand      *string       `json:"brand"`
	Model      *string       `json:"model"`
	Problem    *string       `json:"problem"`
	Urgency    *string       `json:"urgency"`
	ServiceID  *string       `json:"serviceId"`
	Status     *TicketStatus `json:"status"`
}
