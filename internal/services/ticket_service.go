package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"repair-app/internal/models"
	"repair-app/internal/utils"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *models.Ticket) error
	GetByID(ctx context.Context, id string) (*models.Ticket, error)
	Update(ctx context.Context, ticket *models.Ticket) error
	GetAll(ctx context.Context) ([]models.Ticket, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Ticket, error)
	UserIndex(ctx context.Context, userID string) ([]string, error)
	MasterIndex(ctx context.Context, masterID string) ([]string, error)
	Assign(ctx context.Context, ticket *models.Ticket, prevMasterID string) error
}

type TicketService struct {
	repo     TicketRepository
	users    UserRepository
	catalog  CatalogRepository
	notifier Notifier
}

func NewTicketService(repo TicketRepository, users UserRepository, catalog CatalogRepository, notifier Notifier) *TicketService {
	return &TicketService{repo: repo, users: users, catalog: catalog, notifier: notifier}
}

type CreateTicketInput struct {
	DeviceType models.DeviceType `json:"deviceType"`
	Brand      string            `json:"brand"`
	Model      string            `json:"model"`
	Problem    string            `json:"problem"`
	Urgency    string            `json:"urgency"`
	ServiceID  string            `json:"serviceId"`
}

type ListFilters struct {
	Category string
	Status   string
}

func (s *TicketService) Create(ctx context.Context, actor Actor, input CreateTicketInput) (*models.Ticket, error) {
	if !Can(actor.Role, TicketCreate) {
		return nil, models.ErrForbidden
	}

	now := time.Now().UTC()
	ticket := &models.Ticket{
		ID:           uuid.NewString(),
		TicketNumber: models.NewTicketNumber(now),
		UserID:       actor.ID,
		DeviceType:   input.DeviceType,
		Brand:        input.Brand,
		Model:        input.Model,
		Problem:      input.Problem,
		Urgency:      input.Urgency,
		ServiceID:    input.ServiceID,
		Status:       models.StatusNew,
		Comments:     []models.Comment{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := utils.ValidateStruct(ticket); err != nil {
		return nil, models.ErrValidation
	}

	if ticket.ServiceID != "" {
		if _, err := s.catalog.GetByID(ctx, ticket.ServiceID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// List отдаёт видимые актору тикеты: админ — полный скан, мастер — по
// своему индексу, клиент — по своему. Затем фильтры и сортировка по дате.
func (s *TicketService) List(ctx context.Context, actor Actor, filters ListFilters) ([]models.Ticket, error) {
	var (
		tickets []models.Ticket
		err     error
	)

	switch {
	case Can(actor.Role, TicketViewAll):
		tickets, err = s.repo.GetAll(ctx)
	case Can(actor.Role, TicketViewAssigned):
		var ids []string
		if ids, err = s.repo.MasterIndex(ctx, actor.ID); err == nil {
			tickets, err = s.repo.GetByIDs(ctx, ids)
		}
	case Can(actor.Role, TicketViewOwn):
		var ids []string
		if ids, err = s.repo.UserIndex(ctx, actor.ID); err == nil {
			tickets, err = s.repo.GetByIDs(ctx, ids)
		}
	default:
		return nil, models.ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	tickets = filterTickets(tickets, filters)
	sortByNewest(tickets)
	return tickets, nil
}

func (s *TicketService) Get(ctx context.Context, actor Actor, id string) (*models.Ticket, error) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canSee(actor, ticket) {
		return nil, models.ErrForbidden
	}
	return ticket, nil
}

// Update сливает частичное обновление. Клиент правит только свои тикеты и
// не трогает статус; мастер меняет только статус своих назначений; админ —
// что угодно. Смена статуса идёт через таблицу переходов, админ её обходит.
func (s *TicketService) Update(ctx context.Context, actor Actor, id string, upd models.TicketUpdate) (*models.Ticket, error) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case models.RoleAdmin:
	case models.RoleClient:
		if ticket.UserID != actor.ID || upd.Status != nil {
			return nil, models.ErrForbidden
		}
	case models.RoleMaster:
		if ticket.AssignedTo != actor.ID || !Can(actor.Role, TicketSetStatus) {
			return nil, models.ErrForbidden
		}
		if upd.DeviceType != nil || upd.Brand != nil || upd.Model != nil ||
			upd.Problem != nil || upd.Urgency != nil || upd.ServiceID != nil {
			return nil, models.ErrForbidden
		}
	default:
		return nil, models.ErrForbidden
	}

	statusChanged := false
	if upd.Status != nil && *upd.Status != ticket.Status {
		if !upd.Status.Valid() {
			return nil, models.ErrValidation
		}
		if actor.Role != models.RoleAdmin && !models.CanTransition(ticket.Status, *upd.Status) {
			return nil, models.ErrInvalidTransition
		}
		ticket.Status = *upd.Status
		statusChanged = true
	}

	if upd.DeviceType != nil {
		ticket.DeviceType = *upd.DeviceType
	}
	if upd.Brand != nil {
		ticket.Brand = *upd.Brand
	}
	if upd.Model != nil {
		ticket.Model = *upd.Model
	}
	if upd.Problem != nil {
		ticket.Problem = *upd.Problem
	}
	if upd.Urgency != nil {
		ticket.Urgency = *upd.Urgency
	}
	if upd.ServiceID != nil {
		if *upd.ServiceID != "" {
			if _, err := s.catalog.GetByID(ctx, *upd.ServiceID); err != nil {
				return nil, err
			}
		}
		ticket.ServiceID = *upd.ServiceID
	}
	ticket.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	if statusChanged {
		s.notifyOwner(ctx, ticket, s.notifier.TicketStatusChanged)
	}
	return ticket, nil
}

func (s *TicketService) AddComment(ctx context.Context, actor Actor, id, text string) (*models.Ticket, error) {
	if text == "" {
		return nil, models.ErrValidation
	}

	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !Can(actor.Role, TicketComment) || !canSee(actor, ticket) {
		return nil, models.ErrForbidden
	}

	now := time.Now().UTC()
	ticket.Comments = append(ticket.Comments, models.Comment{
		ID:        uuid.NewString(),
		UserID:    actor.ID,
		UserName:  actor.Name,
		Text:      text,
		CreatedAt: now,
	})
	ticket.UpdatedAt = now

	if err := s.repo.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// Assign назначает мастера и переводит тикет в assigned.
func (s *TicketService) Assign(ctx context.Context, actor Actor, id, masterID string) (*models.Ticket, error) {
	if !Can(actor.Role, TicketAssign) {
		return nil, models.ErrForbidden
	}

	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	master, err := s.users.GetByID(ctx, masterID)
	if err != nil {
		return nil, err
	}
	if master.Role != models.RoleMaster || master.Blocked {
		return nil, models.ErrValidation
	}

	prevMaster := ticket.AssignedTo
	ticket.AssignedTo = masterID
	ticket.Status = models.StatusAssigned
	ticket.UpdatedAt = time.Now().UTC()

	if err := s.repo.Assign(ctx, ticket, prevMaster); err != nil {
		return nil, err
	}

	s.notifyOwner(ctx, ticket, s.notifier.TicketAssigned)
	return ticket, nil
}

func (s *TicketService) notifyOwner(ctx context.Context, ticket *models.Ticket, send func(string, *models.Ticket)) {
	owner, err := s.users.GetByID(ctx, ticket.UserID)
	if err != nil {
		return
	}
	send(owner.Email, ticket)
}

func canSee(actor Actor, ticket *models.Ticket) bool {
	switch actor.Role {
	case models.RoleAdmin:
		return true
	case models.RoleMaster:
		return ticket.AssignedTo == actor.ID
	case models.RoleClient:
		return ticket.UserID == actor.ID
	}
	return false
}

func filterTickets(tickets []models.Ticket, f ListFilters) []models.Ticket {
	if f.Category == "" && f.Status == "" {
		return tickets
	}
	out := make([]models.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if f.Category != "" && string(t.DeviceType) != f.Category {
			continue
		}
		if f.Status != "" && string(t.Status) != f.Status {
			continue
		}
		out = append(out, t)
	}
	return out
}

func sortByNewest(tickets []models.Ticket) {
	sort.SliceStable(tickets, func(i, j int) bool {
		return tickets[i].CreatedAt.After(tickets[j].CreatedAt)
	})
}
