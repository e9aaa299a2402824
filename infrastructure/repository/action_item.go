package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/iqol/brand-pulse-api/infrastructure/database/postgres"
	"github.com/iqol/brand-pulse-api/internal/domain"
	"github.com/iqol/brand-pulse-api/pkg/utils"
)

const actionItemsTable = "action_items"

//go:generate mockgen -source=action_item.go -destination=mocks/action_item_mock.go -package=mocks

type ActionItemRepository interface {
	List() ([]*domain.ActionItem, error)
	GetByID(itemID int) (*domain.ActionItem, error)
	Create(item *domain.ActionItem) (*domain.ActionItem, error)
	UpdateStatus(itemID int, status string) error
	Delete(itemID int) error
}

type actionItemRepository struct {
	conn *postgres.Connection
}

func NewActionItemRepository(conn *postgres.Connection) ActionItemRepository {
	return &actionItemRepository{
		conn: conn,
	}
}

// List devolve os itens na ordem da tela: reunião mais recente primeiro
func (r *actionItemRepository) List() ([]*domain.ActionItem, error) {
	queryBuilder := squirrel.
		Select("id", "due_date", "assigned_to", "task", "status", "created_at").
		From(actionItemsTable).
		OrderBy("due_date DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar)

	itemsSQL, itemsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(itemsSQL, itemsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.ActionItem
	for rows.Next() {
		var item domain.ActionItem
		var dueDate time.Time
		if err := rows.Scan(
			&item.ID,
			&dueDate,
			&item.AssignedTo,
			&item.Task,
			&item.Status,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		item.DueDate = utils.FormatDate(dueDate)
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *actionItemRepository) GetByID(itemID int) (*domain.ActionItem, error) {
	var item domain.ActionItem
	var dueDate time.Time
	err := r.conn.QueryRow(
		"SELECT id, due_date, assigned_to, task, status, created_at FROM action_items WHERE id = $1",
		itemID,
	).Scan(
		&item.ID,
		&dueDate,
		&item.AssignedTo,
		&item.Task,
		&item.Status,
		&item.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	item.DueDate = utils.FormatDate(dueDate)

	return &item, nil
}

func (r *actionItemRepository) Create(item *domain.ActionItem) (*domain.ActionItem, error) {
	queryBuilder := squirrel.
		Insert(actionItemsTable).
		Columns("due_date", "assigned_to", "task", "status").
		Values(item.DueDate, item.AssignedTo, item.Task, item.Status).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	itemsSQL, itemsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(itemsSQL, itemsArgs...).Scan(&item.ID)
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *actionItemRepository) UpdateStatus(itemID int, status string) error {
	queryBuilder := squirrel.
		Update(actionItemsTable).
		Set("status", status).
		Where(squirrel.Eq{"id": itemID}).
		PlaceholderFormat(squirrel.Dollar)

	itemsSQL, itemsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(itemsSQL, itemsArgs...)
	return err
}

func (r *actionItemRepository) Delete(itemID int) error {
	queryBuilder := squirrel.
		Delete(actionItemsTable).
		Where(squirrel.Eq{"id": itemID}).
		PlaceholderFormat(squirrel.Dollar)

	itemsSQL, itemsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(itemsSQL, itemsArgs...)
	return err
}
