package repository

import (
	"context"
	"encoding/json"
	"errors"

	"repair-app/internal/models"
)

type TicketRepository struct {
	store Store
}

func NewTicketRepository(store Store) *TicketRepository {
	return &TicketRepository{store: store}
}

// Create записывает тикет и пополненный индекс владельца атомарно.
func (r *TicketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	index, err := r.index(ctx, UserTicketsPrefix+ticket.UserID)
	if err != nil {
		return err
	}

	return r.store.SetMulti(ctx, map[string]interface{}{
		TicketPrefix + ticket.ID:          ticket,
		UserTicketsPrefix + ticket.UserID: append(index, ticket.ID),
	})
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := r.store.Get(ctx, TicketPrefix+id, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Update полностью заменяет запись тикета (last-write-wins).
func (r *TicketRepository) Update(ctx context.Context, ticket *models.Ticket) error {
	return r.store.Set(ctx, TicketPrefix+ticket.ID, ticket, 0)
}

func (r *TicketRepository) GetAll(ctx context.Context) ([]models.Ticket, error) {
	raw, err := r.store.GetByPrefix(ctx, TicketPrefix)
	if err != nil {
		return nil, err
	}

	tickets := make([]models.Ticket, 0, len(raw))
	for _, data := range raw {
		var ticket models.Ticket
		if err := json.Unmarshal(data, &ticket); err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}
	return tickets, nil
}

// GetByIDs разворачивает индекс в тикеты; висячие id молча пропускаются.
func (r *TicketRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Ticket, error) {
	tickets := make([]models.Ticket, 0, len(ids))
	for _, id := range ids {
		ticket, err := r.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				continue
			}
			return nil, err
		}
		tickets = append(tickets, *ticket)
	}
	return tickets, nil
}

func (r *TicketRepository) UserIndex(ctx context.Context, userID string) ([]string, error) {
	return r.index(ctx, UserTicketsPrefix+userID)
}

func (r *TicketRepository) MasterIndex(ctx context.Context, masterID string) ([]string, error) {
	return r.index(ctx, MasterTicketsPrefix+masterID)
}

// Assign переписывает тикет и оба затронутых индекса мастеров одной
// транзакцией: при переназначении id уходит из индекса прежнего мастера.
func (r *TicketRepository) Assign(ctx context.Context, ticket *models.Ticket, prevMasterID string) error {
	pairs := map[string]interface{}{
		TicketPrefix + ticket.ID: ticket,
	}

	index, err := r.index(ctx, MasterTicketsPrefix+ticket.AssignedTo)
	if err != nil {
		return err
	}
	if !contains(index, ticket.ID) {
		index = append(index, ticket.ID)
	}
	pairs[MasterTicketsPrefix+ticket.AssignedTo] = index

	if prevMasterID != "" && prevMasterID != ticket.AssignedTo {
		prevIndex, err := r.index(ctx, MasterTicketsPrefix+prevMasterID)
		if err != nil {
			return err
		}
		pairs[MasterTicketsPrefix+prevMasterID] = remove(prevIndex, ticket.ID)
	}

	return r.store.SetMulti(ctx, pairs)
}

func (r *TicketRepository) index(ctx context.Context, key string) ([]string, error) {
	var ids []string
	if err := r.store.Get(ctx, key, &ids); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return []string{}, nil
		}
		return nil, err
	}
	return ids, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
